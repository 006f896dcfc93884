package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sealgate.io/sealgate/ent"
	entproject "sealgate.io/sealgate/ent/project"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
	"sealgate.io/sealgate/internal/pkg/logger"
	"sealgate.io/sealgate/internal/storage"
)

// DeleteProjectUseCase removes a project and everything under it: documents,
// envelopes, investors via database cascade, then every project blob.
type DeleteProjectUseCase struct {
	entClient *ent.Client
	store     storage.Store
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase.
func NewDeleteProjectUseCase(entClient *ent.Client, store storage.Store) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{entClient: entClient, store: store}
}

// Execute deletes the project.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, projectID string) error {
	proj, err := uc.entClient.Project.Query().
		Where(entproject.ID(projectID)).
		WithDocuments().
		WithEnvelopes(func(q *ent.EnvelopeQuery) { q.WithArtifact() }).
		Only(ctx)
	if ent.IsNotFound(err) {
		return apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found")
	}
	if err != nil {
		return fmt.Errorf("fetch project: %w", err)
	}

	var keys []string
	for _, doc := range proj.Edges.Documents {
		keys = append(keys, doc.StorageKey)
	}
	for _, env := range proj.Edges.Envelopes {
		if art := env.Edges.Artifact; art != nil {
			keys = append(keys, art.StorageKeyPdf, art.StorageKeyAudit)
		}
	}

	if err := uc.entClient.Project.DeleteOneID(projectID).Exec(ctx); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	for _, key := range keys {
		if err := uc.store.Delete(ctx, key); err != nil {
			logger.Warn("orphaned blob left behind",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
	return nil
}
