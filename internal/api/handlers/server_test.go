package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "sealgate.io/sealgate/internal/pkg/errors"
	"sealgate.io/sealgate/internal/storage"
)

func TestBlobErrorMissingBlobIsNotFound(t *testing.T) {
	err := blobError(storage.ErrNotFound, "artifact")
	assert.Equal(t, apperrors.CodeBlobNotFound, err.Code)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
}

func TestBlobErrorOutageIsServiceUnavailable(t *testing.T) {
	err := blobError(errors.New("connection refused"), "document")
	assert.Equal(t, apperrors.CodeStorageFailed, err.Code)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
}
