package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sealgate.io/sealgate/ent"
	entenvelope "sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/event"
	entsigner "sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/internal/jobs"
	"sealgate.io/sealgate/internal/ledger"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
	"sealgate.io/sealgate/internal/pkg/logger"
)

// SendEnvelopeInput represents the input for sending an envelope. The
// optional metadata fields refresh the envelope before delivery.
type SendEnvelopeInput struct {
	EnvelopeID     string     `json:"-"`
	Subject        string     `json:"subject"`
	Message        string     `json:"message"`
	RequesterName  string     `json:"requester_name"`
	RequesterEmail string     `json:"requester_email"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

// SendEnvelopeUseCase moves an envelope into the sent state and queues the
// signer invitations.
//
// Sending an already-sent envelope is a legitimate re-notify: metadata is
// refreshed and invitations go out again, but signer progress is untouched.
type SendEnvelopeUseCase struct {
	entClient *ent.Client
	enqueuer  JobEnqueuer
}

// NewSendEnvelopeUseCase creates a new SendEnvelopeUseCase.
func NewSendEnvelopeUseCase(entClient *ent.Client, enqueuer JobEnqueuer) *SendEnvelopeUseCase {
	return &SendEnvelopeUseCase{entClient: entClient, enqueuer: enqueuer}
}

// Execute sends the envelope and returns it with signers loaded.
func (uc *SendEnvelopeUseCase) Execute(ctx context.Context, input SendEnvelopeInput) (*ent.Envelope, error) {
	var pendingIDs []string
	err := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		env, err := ledger.Lock(ctx, tx, input.EnvelopeID)
		if ent.IsNotFound(err) {
			return apperrors.ErrEnvelopeNotFound()
		}
		if err != nil {
			return fmt.Errorf("lock envelope: %w", err)
		}
		if env.Status == entenvelope.StatusCompleted {
			return apperrors.Conflict(apperrors.CodeEnvelopeCompleted,
				"envelope is already completed")
		}

		signers, err := env.QuerySigners().Order(ent.Asc(entsigner.FieldRoutingOrder)).All(ctx)
		if err != nil {
			return fmt.Errorf("load signers: %w", err)
		}
		if len(signers) == 0 {
			return apperrors.BadRequest(apperrors.CodeSignerRequired,
				"envelope has no signers to send to")
		}

		resend := env.Status == entenvelope.StatusSent

		upd := tx.Envelope.UpdateOneID(env.ID).
			SetStatus(entenvelope.StatusSent)
		if input.Subject != "" {
			upd.SetSubject(input.Subject)
		}
		if input.Message != "" {
			upd.SetMessage(input.Message)
		}
		if input.RequesterName != "" {
			upd.SetRequesterName(input.RequesterName)
		}
		if input.RequesterEmail != "" {
			upd.SetRequesterEmail(input.RequesterEmail)
		}
		if input.ExpiresAt != nil {
			upd.SetExpiresAt(*input.ExpiresAt)
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("update envelope: %w", err)
		}

		for _, sig := range signers {
			if sig.Status == entsigner.StatusPending {
				pendingIDs = append(pendingIDs, sig.ID)
			}
		}

		_, err = ledger.Append(ctx, tx, env.ID, ledger.SystemActor, event.TypeSent,
			map[string]interface{}{
				"recipients": len(pendingIDs),
				"resend":     resend,
			}, "", "")
		return err
	})
	if err != nil {
		return nil, err
	}

	// Delivery is best-effort and must not undo the send.
	for _, signerID := range pendingIDs {
		if _, err := uc.enqueuer.Insert(ctx, jobs.EmailSendArgs{
			EnvelopeID: input.EnvelopeID,
			SignerID:   signerID,
			Notice:     jobs.EmailKindInvite,
		}, nil); err != nil {
			logger.Error("enqueue invitation failed",
				zap.String("envelope_id", input.EnvelopeID),
				zap.String("signer_id", signerID),
				zap.Error(err),
			)
		}
	}

	return uc.entClient.Envelope.Query().
		Where(entenvelope.ID(input.EnvelopeID)).
		WithSigners().
		Only(ctx)
}
