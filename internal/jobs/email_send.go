// Package jobs contains the River Queue workers.
//
// Business transactions never wait on these: emails and verification sweeps
// are enqueued or scheduled after commit, so a dead SMTP server cannot roll
// back a sealed envelope.
package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"sealgate.io/sealgate/ent"
	entsigner "sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/internal/config"
	"sealgate.io/sealgate/internal/notification"
	"sealgate.io/sealgate/internal/pkg/logger"
	"sealgate.io/sealgate/internal/storage"
	"sealgate.io/sealgate/internal/token"
)

// Email kinds.
const (
	EmailKindInvite    = "invite"
	EmailKindCompleted = "completed"
)

// EmailSendArgs identifies what to send by ID only; the worker re-reads the
// current state so a re-sent envelope uses fresh subject and message text.
type EmailSendArgs struct {
	EnvelopeID string `json:"envelope_id"`
	// SignerID selects the recipient. Empty with Notice=completed addresses
	// the requester instead.
	SignerID string `json:"signer_id,omitempty"`
	Notice   string `json:"notice"`
}

// Kind returns the job kind identifier.
func (EmailSendArgs) Kind() string { return "email_send" }

// InsertOpts returns default insert options for email jobs. No uniqueness:
// re-sending an envelope legitimately repeats the same args.
func (EmailSendArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "mail",
		MaxAttempts: 5,
	}
}

// EmailSendWorker delivers invitation and completion emails.
type EmailSendWorker struct {
	river.WorkerDefaults[EmailSendArgs]
	entClient *ent.Client
	mailer    notification.Mailer
	codec     *token.Codec
	store     storage.Store
	signing   config.SigningConfig
}

// NewEmailSendWorker creates a new EmailSendWorker.
func NewEmailSendWorker(
	entClient *ent.Client,
	mailer notification.Mailer,
	codec *token.Codec,
	store storage.Store,
	signing config.SigningConfig,
) *EmailSendWorker {
	return &EmailSendWorker{
		entClient: entClient,
		mailer:    mailer,
		codec:     codec,
		store:     store,
		signing:   signing,
	}
}

// Work delivers one email.
func (w *EmailSendWorker) Work(ctx context.Context, job *river.Job[EmailSendArgs]) error {
	args := job.Args
	logger.Info("processing email job",
		zap.String("envelope_id", args.EnvelopeID),
		zap.String("signer_id", args.SignerID),
		zap.String("notice", args.Notice),
		zap.Int("attempt", job.Attempt),
	)

	env, err := w.entClient.Envelope.Get(ctx, args.EnvelopeID)
	if ent.IsNotFound(err) {
		// Envelope deleted between enqueue and execution.
		return river.JobCancel(fmt.Errorf("envelope %s no longer exists", args.EnvelopeID))
	}
	if err != nil {
		return fmt.Errorf("fetch envelope %s: %w", args.EnvelopeID, err)
	}

	switch args.Notice {
	case EmailKindInvite:
		return w.sendInvite(ctx, env, args.SignerID)
	case EmailKindCompleted:
		return w.sendCompleted(ctx, env, args.SignerID)
	default:
		return river.JobCancel(fmt.Errorf("unknown email kind %q", args.Notice))
	}
}

func (w *EmailSendWorker) sendInvite(ctx context.Context, env *ent.Envelope, signerID string) error {
	sig, err := env.QuerySigners().Where(entsigner.ID(signerID)).Only(ctx)
	if ent.IsNotFound(err) {
		return river.JobCancel(fmt.Errorf("signer %s no longer exists", signerID))
	}
	if err != nil {
		return fmt.Errorf("fetch signer %s: %w", signerID, err)
	}

	tok, err := w.codec.Issue(sig.ID, env.ID)
	if err != nil {
		return fmt.Errorf("issue signing token: %w", err)
	}

	msg := notification.InviteMessage(notification.InviteParams{
		SignerName:     sig.Name,
		SignerEmail:    sig.Email,
		RequesterName:  env.RequesterName,
		RequesterEmail: env.RequesterEmail,
		Subject:        env.Subject,
		Note:           env.Message,
		SignURL:        notification.SignURL(w.signing.BaseURL, tok),
	})
	return w.mailer.Send(ctx, msg)
}

func (w *EmailSendWorker) sendCompleted(ctx context.Context, env *ent.Envelope, signerID string) error {
	art, err := env.QueryArtifact().Only(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("envelope %s has no final artifact yet: %w", env.ID, err)
	}
	if err != nil {
		return fmt.Errorf("fetch final artifact: %w", err)
	}

	pdf, err := w.store.Get(ctx, art.StorageKeyPdf)
	if err != nil {
		return fmt.Errorf("fetch sealed pdf %s: %w", art.StorageKeyPdf, err)
	}

	name, email := env.RequesterName, env.RequesterEmail
	if signerID != "" {
		sig, err := env.QuerySigners().Where(entsigner.ID(signerID)).Only(ctx)
		if ent.IsNotFound(err) {
			return river.JobCancel(fmt.Errorf("signer %s no longer exists", signerID))
		}
		if err != nil {
			return fmt.Errorf("fetch signer %s: %w", signerID, err)
		}
		name, email = sig.Name, sig.Email
	}
	if email == "" {
		return river.JobCancel(fmt.Errorf("no recipient address for envelope %s", env.ID))
	}

	msg := notification.CompletionMessage(notification.CompletionParams{
		RecipientName:  name,
		RecipientEmail: email,
		Subject:        env.Subject,
		EnvelopeID:     env.ID,
		FinalPDF:       pdf,
	})
	return w.mailer.Send(ctx, msg)
}
