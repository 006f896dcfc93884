// Package handlers implements the HTTP API.
//
// Handlers stay thin: parse the request, call a use case or query, push
// errors to the error-handling middleware via c.Error().
package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"sealgate.io/sealgate/ent"
	"sealgate.io/sealgate/internal/config"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
	"sealgate.io/sealgate/internal/service"
	"sealgate.io/sealgate/internal/storage"
	"sealgate.io/sealgate/internal/token"
	"sealgate.io/sealgate/internal/usecase"
)

// Server holds all API handlers.
type Server struct {
	client *ent.Client
	pool   *pgxpool.Pool
	store  storage.Store
	codec  *token.Codec
	values *service.FieldValueService

	createEnvelopeUC *usecase.CreateEnvelopeUseCase
	sendEnvelopeUC   *usecase.SendEnvelopeUseCase
	signingUC        *usecase.SigningUseCase
	completeUC       *usecase.CompleteSigningUseCase
	deleteEnvelopeUC *usecase.DeleteEnvelopeUseCase
	deleteProjectUC  *usecase.DeleteProjectUseCase

	signing config.SigningConfig
}

// ServerDeps holds all dependencies for creating a Server. Manual DI.
type ServerDeps struct {
	EntClient *ent.Client
	Pool      *pgxpool.Pool
	Store     storage.Store
	Codec     *token.Codec
	Values    *service.FieldValueService

	CreateEnvelopeUC *usecase.CreateEnvelopeUseCase
	SendEnvelopeUC   *usecase.SendEnvelopeUseCase
	SigningUC        *usecase.SigningUseCase
	CompleteUC       *usecase.CompleteSigningUseCase
	DeleteEnvelopeUC *usecase.DeleteEnvelopeUseCase
	DeleteProjectUC  *usecase.DeleteProjectUseCase

	Signing config.SigningConfig
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:           deps.EntClient,
		pool:             deps.Pool,
		store:            deps.Store,
		codec:            deps.Codec,
		values:           deps.Values,
		createEnvelopeUC: deps.CreateEnvelopeUC,
		sendEnvelopeUC:   deps.SendEnvelopeUC,
		signingUC:        deps.SigningUC,
		completeUC:       deps.CompleteUC,
		deleteEnvelopeUC: deps.DeleteEnvelopeUC,
		deleteProjectUC:  deps.DeleteProjectUC,
		signing:          deps.Signing,
	}
}

// blobError maps an object-store read failure onto the API taxonomy. A
// missing blob surfaces as not found; anything else is a storage outage.
func blobError(err error, what string) *apperrors.AppError {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.NotFound(apperrors.CodeBlobNotFound, what+" not found")
	}
	return apperrors.Wrap(err, apperrors.CodeStorageFailed,
		what+" unavailable", http.StatusServiceUnavailable)
}
