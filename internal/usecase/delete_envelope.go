package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sealgate.io/sealgate/ent"
	entenvelope "sealgate.io/sealgate/ent/envelope"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
	"sealgate.io/sealgate/internal/pkg/logger"
	"sealgate.io/sealgate/internal/storage"
)

// DeleteEnvelopeUseCase removes an envelope. Rows cascade at the database
// level (signers, fields, values, events, artifact); sealed blobs are removed
// best-effort afterwards. The uploaded document belongs to the project and
// stays.
type DeleteEnvelopeUseCase struct {
	entClient *ent.Client
	store     storage.Store
}

// NewDeleteEnvelopeUseCase creates a new DeleteEnvelopeUseCase.
func NewDeleteEnvelopeUseCase(entClient *ent.Client, store storage.Store) *DeleteEnvelopeUseCase {
	return &DeleteEnvelopeUseCase{entClient: entClient, store: store}
}

// Execute deletes the envelope and its sealed blobs.
func (uc *DeleteEnvelopeUseCase) Execute(ctx context.Context, envelopeID string) error {
	env, err := uc.entClient.Envelope.Query().
		Where(entenvelope.ID(envelopeID)).
		WithArtifact().
		Only(ctx)
	if ent.IsNotFound(err) {
		return apperrors.ErrEnvelopeNotFound()
	}
	if err != nil {
		return fmt.Errorf("fetch envelope: %w", err)
	}

	if err := uc.entClient.Envelope.DeleteOneID(envelopeID).Exec(ctx); err != nil {
		return fmt.Errorf("delete envelope: %w", err)
	}

	if art := env.Edges.Artifact; art != nil {
		uc.removeBlob(ctx, art.StorageKeyPdf)
		uc.removeBlob(ctx, art.StorageKeyAudit)
	}
	return nil
}

func (uc *DeleteEnvelopeUseCase) removeBlob(ctx context.Context, key string) {
	if err := uc.store.Delete(ctx, key); err != nil {
		logger.Warn("orphaned blob left behind",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
