// Package service provides domain services shared by use cases.
package service

import (
	"context"
	"fmt"
	"strings"

	"sealgate.io/sealgate/ent"
	entenvelope "sealgate.io/sealgate/ent/envelope"
	entfield "sealgate.io/sealgate/ent/envelopefield"
	entsigner "sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
	"sealgate.io/sealgate/internal/seal"
)

// FieldValueService owns the persistence rules for signer-submitted field
// values: which fields a signer may fill, which submissions are worth
// storing, and how the latest values are aggregated for sealing.
type FieldValueService struct{}

// NewFieldValueService creates a new FieldValueService.
func NewFieldValueService() *FieldValueService {
	return &FieldValueService{}
}

// Visible reports whether a field belongs to the given signer's view.
// A field bound to a specific signer is visible only to that signer;
// an unbound field is matched by role.
func (s *FieldValueService) Visible(f *ent.EnvelopeField, sig *ent.Signer) bool {
	if bound := f.Edges.Signer; bound != nil {
		return bound.ID == sig.ID
	}
	return f.Role == "" || f.Role == sig.Role
}

// ShouldStore reports whether a submitted value is substantive enough to
// persist. Blank strings and nils are dropped; an explicit false on a
// checkbox is a real answer and is kept.
func (s *FieldValueService) ShouldStore(fieldType entfield.Type, value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case bool:
		return v || fieldType == entfield.TypeCheckbox
	default:
		return true
	}
}

// Replace stores a signer's submission, replacing any values the signer
// saved before. An empty submission is a no-op rather than a wipe; submissions
// for fields outside the signer's view are silently ignored. Must run inside
// the caller's transaction.
func (s *FieldValueService) Replace(ctx context.Context, tx *ent.Tx, sig *ent.Signer, values map[string]interface{}) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}
	fields, err := tx.EnvelopeField.Query().
		Where(entfield.HasEnvelopeWith(entenvelope.HasSignersWith(entsigner.ID(sig.ID)))).
		WithSigner().
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load envelope fields: %w", err)
	}

	if _, err := tx.SignerFieldValue.Delete().
		Where(signerfieldvalue.HasSignerWith(entsigner.ID(sig.ID))).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("clear previous values: %w", err)
	}

	stored := 0
	for _, f := range fields {
		if !s.Visible(f, sig) {
			continue
		}
		v, ok := values[f.ID]
		if !ok || !s.ShouldStore(f.Type, v) {
			continue
		}
		if err := tx.SignerFieldValue.Create().
			SetSignerID(sig.ID).
			SetFieldID(f.ID).
			SetPayload(map[string]interface{}{"value": v}).
			Exec(ctx); err != nil {
			return stored, fmt.Errorf("store value for field %s: %w", f.ID, err)
		}
		stored++
	}
	return stored, nil
}

// Collect aggregates the latest stored value per field across all signers of
// an envelope, shaped for the sealing pipeline. Fields nobody filled are
// absent from the result. Works against a client or an open transaction.
func (s *FieldValueService) Collect(ctx context.Context, values *ent.SignerFieldValueClient, envelopeID string) (map[string]seal.Submission, error) {
	rows, err := values.Query().
		Where(signerfieldvalue.HasFieldWith(entfield.HasEnvelopeWith(entenvelope.ID(envelopeID)))).
		WithField().
		Order(ent.Asc(signerfieldvalue.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load field values: %w", err)
	}

	out := make(map[string]seal.Submission, len(rows))
	for _, row := range rows {
		f := row.Edges.Field
		if f == nil {
			continue
		}
		out[f.ID] = seal.Submission{
			Type:  string(f.Type),
			Page:  f.Page,
			X:     f.X,
			Y:     f.Y,
			W:     f.W,
			H:     f.H,
			Value: row.Payload["value"],
			Font:  f.FontFamily,
		}
	}
	return out, nil
}
