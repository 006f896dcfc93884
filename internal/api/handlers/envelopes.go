package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sealgate.io/sealgate/ent"
	entenvelope "sealgate.io/sealgate/ent/envelope"
	entproject "sealgate.io/sealgate/ent/project"
	entsigner "sealgate.io/sealgate/ent/signer"
	"sealgate.io/sealgate/internal/ledger"
	"sealgate.io/sealgate/internal/notification"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
	"sealgate.io/sealgate/internal/usecase"
)

// CreateEnvelope handles POST /api/projects/:id/envelopes.
func (s *Server) CreateEnvelope(c *gin.Context) {
	var input usecase.CreateEnvelopeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid body"))
		return
	}
	input.ProjectID = c.Param("id")

	env, err := s.createEnvelopeUC.Execute(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"envelope": toEnvelopeJSON(env)})
}

// ListEnvelopes handles GET /api/projects/:id/envelopes.
func (s *Server) ListEnvelopes(c *gin.Context) {
	envs, err := s.client.Envelope.Query().
		Where(entenvelope.HasProjectWith(entproject.ID(c.Param("id")))).
		WithSigners(func(q *ent.SignerQuery) {
			q.Order(ent.Asc(entsigner.FieldRoutingOrder))
		}).
		Order(ent.Asc(entenvelope.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list envelopes: %w", err))
		return
	}
	out := make([]envelopeJSON, 0, len(envs))
	for _, env := range envs {
		out = append(out, toEnvelopeJSON(env))
	}
	c.JSON(http.StatusOK, gin.H{"envelopes": out})
}

// GetEnvelope handles GET /api/projects/:id/envelopes/:envelope_id.
func (s *Server) GetEnvelope(c *gin.Context) {
	env, err := s.scopedEnvelope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"envelope": toEnvelopeJSON(env)})
}

// SendEnvelope handles POST /api/projects/:id/envelopes/:envelope_id/send.
func (s *Server) SendEnvelope(c *gin.Context) {
	env, err := s.scopedEnvelope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var input usecase.SendEnvelopeInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid body"))
			return
		}
	}
	input.EnvelopeID = env.ID

	sent, err := s.sendEnvelopeUC.Execute(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"envelope": toEnvelopeJSON(sent)})
}

// DeleteEnvelope handles DELETE /api/projects/:id/envelopes/:envelope_id.
func (s *Server) DeleteEnvelope(c *gin.Context) {
	env, err := s.scopedEnvelope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := s.deleteEnvelopeUC.Execute(c.Request.Context(), env.ID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListEnvelopeEvents handles GET /api/projects/:id/envelopes/:envelope_id/events.
// Returns the full audit history plus a live chain verification verdict.
func (s *Server) ListEnvelopeEvents(c *gin.Context) {
	env, err := s.scopedEnvelope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	events, err := ledger.History(c.Request.Context(), s.client, env.ID)
	if err != nil {
		_ = c.Error(fmt.Errorf("load events: %w", err))
		return
	}

	out := make([]eventJSON, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventJSON(ev))
	}
	c.JSON(http.StatusOK, gin.H{
		"events":      out,
		"chain_valid": ledger.Verify(events) == nil,
	})
}

// GetEnvelopeAudit handles GET /api/projects/:id/envelopes/:envelope_id/audit.
// Streams the sealed audit sidecar.
func (s *Server) GetEnvelopeAudit(c *gin.Context) {
	s.serveArtifact(c, func(art *ent.FinalArtifact) string { return art.StorageKeyAudit },
		"application/json")
}

// GetEnvelopeFinalPDF handles GET /api/projects/:id/envelopes/:envelope_id/final.pdf.
func (s *Server) GetEnvelopeFinalPDF(c *gin.Context) {
	s.serveArtifact(c, func(art *ent.FinalArtifact) string { return art.StorageKeyPdf },
		"application/pdf")
}

// ListMagicLinks handles GET /api/projects/:id/envelopes/:envelope_id/links.
// Development helper: returns each signer's capability link without email.
func (s *Server) ListMagicLinks(c *gin.Context) {
	env, err := s.scopedEnvelope(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	signers, err := env.QuerySigners().
		Order(ent.Asc(entsigner.FieldRoutingOrder)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("load signers: %w", err))
		return
	}

	type link struct {
		SignerID string `json:"signer_id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		URL      string `json:"url"`
	}
	out := make([]link, 0, len(signers))
	for _, sig := range signers {
		tok, err := s.codec.Issue(sig.ID, env.ID)
		if err != nil {
			_ = c.Error(fmt.Errorf("issue token for signer %s: %w", sig.ID, err))
			return
		}
		out = append(out, link{
			SignerID: sig.ID,
			Name:     sig.Name,
			Email:    sig.Email,
			URL:      notification.SignURL(s.signing.BaseURL, tok),
		})
	}
	c.JSON(http.StatusOK, gin.H{"links": out})
}

func (s *Server) serveArtifact(c *gin.Context, key func(*ent.FinalArtifact) string, contentType string) {
	env, err := s.scopedEnvelope(c)
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

	data, err := s.store.Get(c.Request.Context(), key(art))
	if err != nil {
		_ = c.Error(blobError(err, "artifact"))
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

func (s *Server) scopedEnvelope(c *gin.Context) (*ent.Envelope, error) {
	env, err := s.client.Envelope.Query().
		Where(
			entenvelope.ID(c.Param("envelope_id")),
			entenvelope.HasProjectWith(entproject.ID(c.Param("id"))),
		).
		WithSigners(func(q *ent.SignerQuery) {
			q.Order(ent.Asc(entsigner.FieldRoutingOrder))
		}).
		Only(c.Request.Context())
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrEnvelopeNotFound()
	}
	if err != nil {
		return nil, fmt.Errorf("fetch envelope: %w", err)
	}
	return env, nil
}
