package usecase

import (
	"context"
	"fmt"
	"time"

	"sealgate.io/sealgate/ent"
	entdocument "sealgate.io/sealgate/ent/document"
	entenvelope "sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/event"
	entfield "sealgate.io/sealgate/ent/envelopefield"
	entproject "sealgate.io/sealgate/ent/project"
	entprojectinvestor "sealgate.io/sealgate/ent/projectinvestor"
	"sealgate.io/sealgate/internal/ledger"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
)

// SignerSpec describes one requested signer. Either inline name/email or an
// InvestorID referencing the project roster; the roster wins when both are
// given. Key joins fields to signers within the same request.
type SignerSpec struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	RoutingOrder int    `json:"routing_order"`
	InvestorID   string `json:"investor_id"`
}

// FieldSpec describes one field placement.
type FieldSpec struct {
	Page       int     `json:"page"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	W          float64 `json:"w"`
	H          float64 `json:"h"`
	Type       string  `json:"type"`
	Required   *bool   `json:"required"`
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	FontFamily string  `json:"font_family"`
	SignerKey  string  `json:"signer_key"`
}

// CreateEnvelopeInput represents the input for creating an envelope.
type CreateEnvelopeInput struct {
	ProjectID      string       `json:"project_id"`
	DocumentID     string       `json:"document_id"`
	Subject        string       `json:"subject"`
	Message        string       `json:"message"`
	RequesterName  string       `json:"requester_name"`
	RequesterEmail string       `json:"requester_email"`
	ExpiresAt      *time.Time   `json:"expires_at"`
	Signers        []SignerSpec `json:"signers"`
	Fields         []FieldSpec  `json:"fields"`
}

// CreateEnvelopeUseCase creates a draft envelope with its signers and fields
// and opens its audit chain.
type CreateEnvelopeUseCase struct {
	entClient *ent.Client
}

// NewCreateEnvelopeUseCase creates a new CreateEnvelopeUseCase.
func NewCreateEnvelopeUseCase(entClient *ent.Client) *CreateEnvelopeUseCase {
	return &CreateEnvelopeUseCase{entClient: entClient}
}

// Execute creates the envelope. The envelope starts in draft; nothing is
// delivered until it is sent.
func (uc *CreateEnvelopeUseCase) Execute(ctx context.Context, input CreateEnvelopeInput) (*ent.Envelope, error) {
	proj, err := uc.entClient.Project.Get(ctx, input.ProjectID)
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found")
	}
	if err != nil {
		return nil, fmt.Errorf("fetch project: %w", err)
	}

	doc, err := proj.QueryDocuments().Where(entdocument.ID(input.DocumentID)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.BadRequest(apperrors.CodeDocumentMismatch,
			"document does not belong to this project")
	}
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}

	for i, f := range input.Fields {
		if err := entfield.TypeValidator(entfield.Type(f.Type)); err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
				fmt.Sprintf("field %d: unknown type %q", i, f.Type))
		}
	}

	envelopeID := generateID()
	err = withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		create := tx.Envelope.Create().
			SetID(envelopeID).
			SetProjectID(proj.ID).
			SetDocumentID(doc.ID).
			SetRequesterName(input.RequesterName).
			SetRequesterEmail(input.RequesterEmail)
		if input.Subject != "" {
			create.SetSubject(input.Subject)
		}
		if input.Message != "" {
			create.SetMessage(input.Message)
		}
		if input.ExpiresAt != nil {
			create.SetExpiresAt(*input.ExpiresAt)
		}
		env, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create envelope: %w", err)
		}

		signersByKey := make(map[string]string, len(input.Signers))
		for i, spec := range input.Signers {
			resolved, err := uc.resolveSigner(ctx, tx, proj.ID, spec)
			if err != nil {
				return err
			}
			sc := tx.Signer.Create().
				SetID(generateID()).
				SetEnvelopeID(env.ID).
				SetName(resolved.Name).
				SetEmail(resolved.Email).
				SetRoutingOrder(i + 1)
			if resolved.Role != "" {
				sc.SetRole(resolved.Role)
			}
			if resolved.RoutingOrder > 0 {
				sc.SetRoutingOrder(resolved.RoutingOrder)
			}
			sig, err := sc.Save(ctx)
			if err != nil {
				return fmt.Errorf("create signer %s: %w", resolved.Email, err)
			}
			if spec.Key != "" {
				signersByKey[spec.Key] = sig.ID
			}
		}

		for i, spec := range input.Fields {
			fc := tx.EnvelopeField.Create().
				SetID(generateID()).
				SetEnvelopeID(env.ID).
				SetX(spec.X).
				SetY(spec.Y).
				SetW(spec.W).
				SetH(spec.H).
				SetType(entfield.Type(spec.Type)).
				SetName(spec.Name).
				SetFontFamily(spec.FontFamily)
			if spec.Page > 0 {
				fc.SetPage(spec.Page)
			}
			if spec.Required != nil {
				fc.SetRequired(*spec.Required)
			}
			if spec.Role != "" {
				fc.SetRole(spec.Role)
			}
			if spec.SignerKey != "" {
				signerID, ok := signersByKey[spec.SignerKey]
				if !ok {
					return apperrors.BadRequest(apperrors.CodeValidationFailed,
						fmt.Sprintf("field %d references unknown signer key %q", i, spec.SignerKey))
				}
				fc.SetSignerID(signerID)
			}
			if err := fc.Exec(ctx); err != nil {
				return fmt.Errorf("create field %d: %w", i, err)
			}
		}

		_, err = ledger.Append(ctx, tx, env.ID, ledger.SystemActor, event.TypeCreated,
			map[string]interface{}{
				"subject": env.Subject,
				"signers": len(input.Signers),
				"fields":  len(input.Fields),
			}, "", "")
		return err
	})
	if err != nil {
		return nil, err
	}

	return uc.entClient.Envelope.Query().
		Where(entenvelope.ID(envelopeID)).
		WithSigners().
		WithFields().
		Only(ctx)
}

// resolveSigner fills a spec from the project's investor roster when
// InvestorID is set.
func (uc *CreateEnvelopeUseCase) resolveSigner(ctx context.Context, tx *ent.Tx, projectID string, spec SignerSpec) (SignerSpec, error) {
	if spec.InvestorID == "" {
		if spec.Name == "" || spec.Email == "" {
			return spec, apperrors.BadRequest(apperrors.CodeValidationFailed,
				"signer needs a name and email or an investor_id")
		}
		return spec, nil
	}
	inv, err := tx.ProjectInvestor.Query().
		Where(
			entprojectinvestor.ID(spec.InvestorID),
			entprojectinvestor.HasProjectWith(entproject.ID(projectID)),
		).Only(ctx)
	if ent.IsNotFound(err) {
		return spec, apperrors.NotFound(apperrors.CodeInvestorNotFound,
			fmt.Sprintf("investor %s not found in project", spec.InvestorID))
	}
	if err != nil {
		return spec, fmt.Errorf("fetch investor: %w", err)
	}
	spec.Name = inv.Name
	spec.Email = inv.Email
	if spec.Role == "" {
		spec.Role = inv.Role
	}
	if spec.RoutingOrder == 0 {
		spec.RoutingOrder = inv.RoutingOrder
	}
	return spec, nil
}
