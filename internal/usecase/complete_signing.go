package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"sealgate.io/sealgate/ent"
	entenvelope "sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/event"
	entfinalartifact "sealgate.io/sealgate/ent/finalartifact"
	entsigner "sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/internal/jobs"
	"sealgate.io/sealgate/internal/ledger"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
	"sealgate.io/sealgate/internal/pkg/logger"
	"sealgate.io/sealgate/internal/pkg/worker"
	"sealgate.io/sealgate/internal/seal"
	"sealgate.io/sealgate/internal/service"
	"sealgate.io/sealgate/internal/storage"
)

// Completion statuses.
const (
	CompleteStatusWaiting   = "waiting"
	CompleteStatusCompleted = "completed"
)

// CompleteOutput is the result of a completion attempt.
type CompleteOutput struct {
	Status      string     `json:"status"`
	WaitingOn   int        `json:"waiting_on,omitempty"`
	SHA256Final string     `json:"sha256_final,omitempty"`
	SealedAt    *time.Time `json:"sealed_at,omitempty"`
}

// CompleteSigningUseCase finalizes one signer's participation. When the last
// signer completes it runs the sealing pipeline inside the same transaction,
// so the terminal decision is made exactly once under the envelope lock.
type CompleteSigningUseCase struct {
	entClient *ent.Client
	signing   *SigningUseCase
	values    *service.FieldValueService
	store     storage.Store
	enqueuer  JobEnqueuer
	pools     *worker.Pools
}

// NewCompleteSigningUseCase creates a new CompleteSigningUseCase.
func NewCompleteSigningUseCase(
	entClient *ent.Client,
	signing *SigningUseCase,
	values *service.FieldValueService,
	store storage.Store,
	enqueuer JobEnqueuer,
	pools *worker.Pools,
) *CompleteSigningUseCase {
	return &CompleteSigningUseCase{
		entClient: entClient,
		signing:   signing,
		values:    values,
		store:     store,
		enqueuer:  enqueuer,
		pools:     pools,
	}
}

// Execute completes signing for the capability token's signer. A final
// submission may ride along. Repeating a completed signer's call returns the
// same terminal result.
func (uc *CompleteSigningUseCase) Execute(ctx context.Context, tok string, values map[string]interface{}, ip, ua string) (*CompleteOutput, error) {
	sig, env, err := uc.signing.Resolve(ctx, tok)
	if err != nil {
		return nil, err
	}

	var out CompleteOutput
	var sealed bool
	err = withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		lockedEnv, err := ledger.Lock(ctx, tx, env.ID)
		if err != nil {
			return fmt.Errorf("lock envelope: %w", err)
		}

		// Terminal state reached by someone else: answer with the same
		// completed result instead of failing.
		if art, err := tx.FinalArtifact.Query().
			Where(entfinalartifact.HasEnvelopeWith(entenvelope.ID(env.ID))).
			Only(ctx); err == nil {
			out = completedOutput(art)
			return nil
		} else if !ent.IsNotFound(err) {
			return fmt.Errorf("check final artifact: %w", err)
		}

		cur, err := tx.Signer.Get(ctx, sig.ID)
		if err != nil {
			return fmt.Errorf("fetch signer: %w", err)
		}

		if len(values) > 0 && cur.Status != entsigner.StatusCompleted {
			if _, err := uc.values.Replace(ctx, tx, cur, values); err != nil {
				return err
			}
		}

		if cur.Status != entsigner.StatusCompleted {
			if err := tx.Signer.UpdateOneID(cur.ID).
				SetStatus(entsigner.StatusCompleted).
				SetCompletedAt(time.Now().UTC()).
				Exec(ctx); err != nil {
				return fmt.Errorf("mark signer completed: %w", err)
			}
			if _, err := ledger.Append(ctx, tx, env.ID, ledger.SignerActor(cur.ID),
				event.TypeCompleted, nil, ip, ua); err != nil {
				return err
			}
		}

		remaining, err := tx.Signer.Query().
			Where(
				entsigner.HasEnvelopeWith(entenvelope.ID(env.ID)),
				entsigner.StatusEQ(entsigner.StatusPending),
			).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count pending signers: %w", err)
		}
		if remaining > 0 {
			out = CompleteOutput{Status: CompleteStatusWaiting, WaitingOn: remaining}
			return nil
		}

		art, err := uc.sealEnvelope(ctx, tx, lockedEnv)
		if err != nil {
			return err
		}
		out = completedOutput(art)
		sealed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if sealed {
		uc.enqueueCompletionNotices(ctx, env.ID)
	}
	return &out, nil
}

// sealEnvelope runs the pipeline for the locked envelope: seal, store both
// artifacts, record the FinalArtifact row, and close the audit chain.
func (uc *CompleteSigningUseCase) sealEnvelope(ctx context.Context, tx *ent.Tx, env *ent.Envelope) (*ent.FinalArtifact, error) {
	doc, err := tx.Envelope.QueryDocument(env).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	proj, err := tx.Envelope.QueryProject(env).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	original, err := uc.store.Get(ctx, doc.StorageKey)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageFailed,
			"original document unavailable", 503)
	}

	submissions, err := uc.values.Collect(ctx, tx.SignerFieldValue, env.ID)
	if err != nil {
		return nil, err
	}

	sealedAt := time.Now().UTC().Truncate(time.Second)
	result, err := seal.Seal(original, env.ID, submissions, sealedAt)
	if err != nil {
		return nil, fmt.Errorf("seal document: %w", err)
	}

	pdfKey := storage.FinalPDFKey(proj.ID, env.ID)
	auditKey := storage.FinalAuditKey(proj.ID, env.ID)
	if err := uc.store.Put(ctx, pdfKey, result.FinalPDF, "application/pdf"); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageFailed,
			"store sealed document", 503)
	}
	if err := uc.store.Put(ctx, auditKey, result.AuditJSON, "application/json"); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageFailed,
			"store audit record", 503)
	}

	art, err := tx.FinalArtifact.Create().
		SetEnvelopeID(env.ID).
		SetStorageKeyPdf(pdfKey).
		SetStorageKeyAudit(auditKey).
		SetSha256Final(result.SHA256Final).
		SetSealedAt(result.SealedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record final artifact: %w", err)
	}

	if err := tx.Envelope.UpdateOneID(env.ID).
		SetStatus(entenvelope.StatusCompleted).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("mark envelope completed: %w", err)
	}

	_, err = ledger.Append(ctx, tx, env.ID, ledger.SystemActor, event.TypeSealed,
		map[string]interface{}{
			"sha256_original": result.SHA256Original,
			"sha256_final":    result.SHA256Final,
			"storage_key_pdf": pdfKey,
		}, "", "")
	if err != nil {
		return nil, err
	}

	logger.Info("envelope sealed",
		zap.String("envelope_id", env.ID),
		zap.String("sha256_final", result.SHA256Final),
	)
	return art, nil
}

// enqueueCompletionNotices fans the per-recipient enqueues out over the
// general worker pool and waits for all of them, so the caller returns with
// every notice either queued or logged as failed.
func (uc *CompleteSigningUseCase) enqueueCompletionNotices(ctx context.Context, envelopeID string) {
	enqueue := func(ctx context.Context, signerID string) {
		if _, err := uc.enqueuer.Insert(ctx, jobs.EmailSendArgs{
			EnvelopeID: envelopeID,
			SignerID:   signerID,
			Notice:     jobs.EmailKindCompleted,
		}, nil); err != nil {
			logger.Error("enqueue completion notice failed",
				zap.String("envelope_id", envelopeID),
				zap.String("signer_id", signerID),
				zap.Error(err),
			)
		}
	}

	signerIDs, err := uc.entClient.Signer.Query().
		Where(entsigner.HasEnvelopeWith(entenvelope.ID(envelopeID))).
		IDs(ctx)
	if err != nil {
		logger.Error("list signers for completion notices failed",
			zap.String("envelope_id", envelopeID), zap.Error(err))
	}
	// Empty signer id addresses the requester.
	recipients := append(signerIDs, "")

	var wg sync.WaitGroup
	for _, id := range recipients {
		signerID := id
		wg.Add(1)
		err := uc.pools.General.Submit(ctx, func(ctx context.Context) {
			defer wg.Done()
			enqueue(ctx, signerID)
		})
		if err != nil {
			wg.Done()
			enqueue(ctx, signerID)
		}
	}
	wg.Wait()
}

func completedOutput(art *ent.FinalArtifact) CompleteOutput {
	sealedAt := art.SealedAt
	return CompleteOutput{
		Status:      CompleteStatusCompleted,
		SHA256Final: art.Sha256Final,
		SealedAt:    &sealedAt,
	}
}

