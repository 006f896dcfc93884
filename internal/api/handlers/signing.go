package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sealgate.io/sealgate/ent"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
)

// Signer-facing endpoints. Authorization is the capability token in the path;
// there is no account or login on this side.

type valuesRequest struct {
	Values map[string]interface{} `json:"values"`
}

type consentRequest struct {
	Accepted bool `json:"accepted"`
}

// OpenSession handles GET /api/sign/:token.
func (s *Server) OpenSession(c *gin.Context) {
	session, err := s.signingUC.Open(c.Request.Context(), c.Param("token"),
		c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSessionDocument handles GET /api/sign/:token/document. Streams the
// original PDF the signer is being asked to sign.
func (s *Server) GetSessionDocument(c *gin.Context) {
	_, env, err := s.signingUC.Resolve(c.Request.Context(), c.Param("token"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	doc, err := s.client.Envelope.QueryDocument(env).Only(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("load document: %w", err))
		return
	}
	data, err := s.store.Get(c.Request.Context(), doc.StorageKey)
	if err != nil {
		_ = c.Error(blobError(err, "document"))
		return
	}
	c.Data(http.StatusOK, "application/pdf", data)
}

// Consent handles POST /api/sign/:token/consent. The body must carry an
// explicit accepted flag; a missing body counts as not accepted.
func (s *Server) Consent(c *gin.Context) {
	var req consentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid body"))
			return
		}
	}
	err := s.signingUC.Consent(c.Request.Context(), c.Param("token"), req.Accepted,
		c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consented": true})
}

// SaveValues handles POST /api/sign/:token/values.
func (s *Server) SaveValues(c *gin.Context) {
	var req valuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid body"))
		return
	}
	session, err := s.signingUC.SaveValues(c.Request.Context(), c.Param("token"),
		req.Values, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CompleteSigning handles POST /api/sign/:token/complete. A final submission
// may ride along in the body.
func (s *Server) CompleteSigning(c *gin.Context) {
	var req valuesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid body"))
			return
		}
	}
	out, err := s.completeUC.Execute(c.Request.Context(), c.Param("token"),
		req.Values, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetSessionFinalPDF handles GET /api/sign/:token/final.pdf. Available once
// the envelope is sealed.
func (s *Server) GetSessionFinalPDF(c *gin.Context) {
	_, env, err := s.signingUC.Resolve(c.Request.Context(), c.Param("token"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	art, err := env.QueryArtifact().Only(c.Request.Context())
	if ent.IsNotFound(err) {
		_ = c.Error(apperrors.NotFound(apperrors.CodeArtifactNotReady,
			"envelope is not sealed yet"))
		return
	}
	if err != nil {
		_ = c.Error(fmt.Errorf("fetch artifact: %w", err))
		return
	}
	data, err := s.store.Get(c.Request.Context(), art.StorageKeyPdf)
	if err != nil {
		_ = c.Error(blobError(err, "artifact"))
		return
	}
	c.Data(http.StatusOK, "application/pdf", data)
}
