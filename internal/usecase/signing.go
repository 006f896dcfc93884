package usecase

import (
	"context"
	"fmt"
	"time"

	"sealgate.io/sealgate/ent"
	entenvelope "sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/event"
	entfield "sealgate.io/sealgate/ent/envelopefield"
	entsigner "sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/ent/signerfieldvalue"
	"sealgate.io/sealgate/internal/ledger"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
	"sealgate.io/sealgate/internal/service"
	"sealgate.io/sealgate/internal/token"
)

// SessionField is one field as presented to a signer, with any value the
// signer saved earlier.
type SessionField struct {
	ID         string      `json:"id"`
	Page       int         `json:"page"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	W          float64     `json:"w"`
	H          float64     `json:"h"`
	Type       string      `json:"type"`
	Required   bool        `json:"required"`
	Name       string      `json:"name,omitempty"`
	FontFamily string      `json:"font_family,omitempty"`
	Value      interface{} `json:"value,omitempty"`
}

// Session is what a signer sees when opening their capability link.
type Session struct {
	EnvelopeID     string         `json:"envelope_id"`
	Subject        string         `json:"subject"`
	Message        string         `json:"message"`
	EnvelopeStatus string         `json:"envelope_status"`
	SignerID       string         `json:"signer_id"`
	SignerName     string         `json:"signer_name"`
	SignerStatus   string         `json:"signer_status"`
	Consented      bool           `json:"consented"`
	Fields         []SessionField `json:"fields"`
}

// SigningUseCase serves the signer-facing session operations. Every
// operation is authorized solely by the capability token; any resolution
// failure collapses into one opaque error.
type SigningUseCase struct {
	entClient *ent.Client
	codec     *token.Codec
	values    *service.FieldValueService
}

// NewSigningUseCase creates a new SigningUseCase.
func NewSigningUseCase(entClient *ent.Client, codec *token.Codec, values *service.FieldValueService) *SigningUseCase {
	return &SigningUseCase{entClient: entClient, codec: codec, values: values}
}

// Resolve verifies a capability token and loads its signer and envelope.
func (uc *SigningUseCase) Resolve(ctx context.Context, tok string) (*ent.Signer, *ent.Envelope, error) {
	claims, err := uc.codec.Verify(tok)
	if err != nil {
		return nil, nil, apperrors.ErrSignTokenInvalid()
	}
	sig, err := uc.entClient.Signer.Query().
		Where(
			entsigner.ID(claims.SignerID),
			entsigner.HasEnvelopeWith(entenvelope.ID(claims.EnvelopeID)),
		).
		WithEnvelope().
		Only(ctx)
	if err != nil {
		return nil, nil, apperrors.ErrSignTokenInvalid()
	}
	env := sig.Edges.Envelope
	if env == nil || env.Status == entenvelope.StatusDraft {
		return nil, nil, apperrors.ErrSignTokenInvalid()
	}
	return sig, env, nil
}

// Open resolves a session, appends an opened event, and records first-open
// provenance. Every load is ledgered; the provenance columns are written once.
func (uc *SigningUseCase) Open(ctx context.Context, tok, ip, ua string) (*Session, error) {
	sig, env, err := uc.Resolve(ctx, tok)
	if err != nil {
		return nil, err
	}

	err = withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		if _, err := ledger.Lock(ctx, tx, env.ID); err != nil {
			return fmt.Errorf("lock envelope: %w", err)
		}
		// Re-check under lock; two tabs may race on first open.
		cur, err := tx.Signer.Get(ctx, sig.ID)
		if err != nil {
			return fmt.Errorf("fetch signer: %w", err)
		}
		if cur.OpenedAt == nil {
			if err := tx.Signer.UpdateOneID(sig.ID).
				SetOpenedAt(time.Now().UTC()).
				SetIPFirst(ip).
				SetUaFirst(ua).
				Exec(ctx); err != nil {
				return fmt.Errorf("record first open: %w", err)
			}
		}
		_, err = ledger.Append(ctx, tx, env.ID, ledger.SignerActor(sig.ID),
			event.TypeOpened, nil, ip, ua)
		return err
	})
	if err != nil {
		return nil, err
	}

	return uc.session(ctx, sig, env)
}

// Consent records the signer's agreement to sign electronically. The flag
// must be an explicit yes; anything else is rejected. Appending again on
// repeat consent is harmless and keeps the ledger append-only.
func (uc *SigningUseCase) Consent(ctx context.Context, tok string, accepted bool, ip, ua string) error {
	sig, env, err := uc.Resolve(ctx, tok)
	if err != nil {
		return err
	}
	if !accepted {
		return apperrors.BadRequest(apperrors.CodeConsentRequired,
			"consent must be affirmed")
	}
	if env.Status == entenvelope.StatusCompleted {
		return apperrors.Conflict(apperrors.CodeEnvelopeCompleted,
			"envelope is already completed")
	}
	return withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		if _, err := ledger.Lock(ctx, tx, env.ID); err != nil {
			return fmt.Errorf("lock envelope: %w", err)
		}
		_, err := ledger.Append(ctx, tx, env.ID, ledger.SignerActor(sig.ID),
			event.TypeConsented, nil, ip, ua)
		return err
	})
}

// SaveValues stores a partial submission so a signer can resume later.
func (uc *SigningUseCase) SaveValues(ctx context.Context, tok string, values map[string]interface{}, ip, ua string) (*Session, error) {
	sig, env, err := uc.Resolve(ctx, tok)
	if err != nil {
		return nil, err
	}
	if env.Status == entenvelope.StatusCompleted {
		return nil, apperrors.Conflict(apperrors.CodeEnvelopeCompleted,
			"envelope is already completed")
	}
	if sig.Status == entsigner.StatusCompleted {
		return nil, apperrors.Conflict(apperrors.CodeEnvelopeCompleted,
			"you have already completed signing")
	}

	err = withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		if _, err := ledger.Lock(ctx, tx, env.ID); err != nil {
			return fmt.Errorf("lock envelope: %w", err)
		}
		if _, err := uc.values.Replace(ctx, tx, sig, values); err != nil {
			return err
		}
		_, err = ledger.Append(ctx, tx, env.ID, ledger.SignerActor(sig.ID),
			event.TypeFilled, map[string]interface{}{"values": values}, ip, ua)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.session(ctx, sig, env)
}

// HasConsented reports whether the signer already has a consented event.
func (uc *SigningUseCase) HasConsented(ctx context.Context, envelopeID, signerID string) (bool, error) {
	return uc.entClient.Event.Query().
		Where(
			event.HasEnvelopeWith(entenvelope.ID(envelopeID)),
			event.TypeEQ(event.TypeConsented),
			event.Actor(ledger.SignerActor(signerID)),
		).
		Exist(ctx)
}

func (uc *SigningUseCase) session(ctx context.Context, sig *ent.Signer, env *ent.Envelope) (*Session, error) {
	fields, err := env.QueryFields().
		WithSigner().
		Order(ent.Asc(entfield.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fields: %w", err)
	}

	saved, err := uc.entClient.SignerFieldValue.Query().
		Where(signerfieldvalue.HasSignerWith(entsigner.ID(sig.ID))).
		WithField().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load saved values: %w", err)
	}
	byField := make(map[string]interface{}, len(saved))
	for _, row := range saved {
		if row.Edges.Field != nil {
			byField[row.Edges.Field.ID] = row.Payload["value"]
		}
	}

	consented, err := uc.HasConsented(ctx, env.ID, sig.ID)
	if err != nil {
		return nil, fmt.Errorf("check consent: %w", err)
	}

	out := &Session{
		EnvelopeID:     env.ID,
		Subject:        env.Subject,
		Message:        env.Message,
		EnvelopeStatus: string(env.Status),
		SignerID:       sig.ID,
		SignerName:     sig.Name,
		SignerStatus:   string(sig.Status),
		Consented:      consented,
	}
	for _, f := range fields {
		if !uc.values.Visible(f, sig) {
			continue
		}
		out.Fields = append(out.Fields, SessionField{
			ID:         f.ID,
			Page:       f.Page,
			X:          f.X,
			Y:          f.Y,
			W:          f.W,
			H:          f.H,
			Type:       string(f.Type),
			Required:   f.Required,
			Name:       f.Name,
			FontFamily: f.FontFamily,
			Value:      byField[f.ID],
		})
	}
	return out, nil
}
