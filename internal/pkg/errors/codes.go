package errors

import "net/http"

// Error code constants. Codes are stable machine identifiers; messages stay
// human-readable and English-only.

// Project/document error codes.
const (
	CodeProjectNotFound  = "PROJECT_NOT_FOUND"
	CodeProjectExists    = "PROJECT_ALREADY_EXISTS"
	CodeDocumentMismatch = "DOCUMENT_MISMATCH"
	CodeInvestorNotFound = "INVESTOR_NOT_FOUND"
)

// Envelope/signer error codes.
const (
	CodeEnvelopeNotFound  = "ENVELOPE_NOT_FOUND"
	CodeEnvelopeCompleted = "ENVELOPE_COMPLETED"
	CodeSignerNotFound    = "SIGNER_NOT_FOUND"
	CodeSignerRequired    = "SIGNER_IDENTITY_REQUIRED"
	CodeConsentRequired   = "CONSENT_REQUIRED"
	CodeArtifactNotReady  = "FINAL_ARTIFACT_NOT_READY"
)

// Auth error codes.
const (
	CodeAccessTokenMissing = "ACCESS_TOKEN_MISSING"
	CodeAdminRequired      = "ADMIN_ACCESS_REQUIRED"
	CodeProjectScope       = "PROJECT_SCOPE_MISMATCH"
	CodeSignTokenInvalid   = "SIGNING_TOKEN_INVALID"
)

// Storage/validation error codes.
const (
	CodeBlobNotFound     = "BLOB_NOT_FOUND"
	CodeStorageFailed    = "STORAGE_FAILED"
	CodeValidationFailed = "VALIDATION_FAILED"
)

// ErrEnvelopeNotFound creates an envelope not found error.
func ErrEnvelopeNotFound() *AppError {
	return &AppError{
		Code:       CodeEnvelopeNotFound,
		Message:    "envelope not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrSignerNotFound creates a signer not found error.
func ErrSignerNotFound() *AppError {
	return &AppError{
		Code:       CodeSignerNotFound,
		Message:    "signer not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrSignTokenInvalid creates the single opaque rejection for bad capability
// tokens. The message never says which check failed.
func ErrSignTokenInvalid() *AppError {
	return &AppError{
		Code:       CodeSignTokenInvalid,
		Message:    "signing link is not valid",
		HTTPStatus: http.StatusForbidden,
	}
}
