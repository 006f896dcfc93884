package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sealgate.io/sealgate/ent"
	entdocument "sealgate.io/sealgate/ent/document"
	entproject "sealgate.io/sealgate/ent/project"
	"sealgate.io/sealgate/internal/config"
	"sealgate.io/sealgate/internal/pkg/canonical"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
	"sealgate.io/sealgate/internal/storage"
)

const maxUploadBytes = 32 << 20

type createProjectRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status"`
}

// CreateProject handles POST /api/projects. The response is the only place
// the project access token is ever returned.
func (s *Server) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "name is required"))
		return
	}

	accessToken, err := config.GenerateSecureRandomHex(24)
	if err != nil {
		_ = c.Error(fmt.Errorf("generate project token: %w", err))
		return
	}

	create := s.client.Project.Create().
		SetID(uuid.NewString()).
		SetName(req.Name).
		SetAccessToken(accessToken)
	if req.Status != "" {
		create.SetStatus(req.Status)
	}
	proj, err := create.Save(c.Request.Context())
	if ent.IsConstraintError(err) {
		_ = c.Error(apperrors.Conflict(apperrors.CodeProjectExists,
			"a project with this name already exists"))
		return
	}
	if err != nil {
		_ = c.Error(fmt.Errorf("create project: %w", err))
		return
	}

	out := gin.H{"project": toProjectJSON(proj), "access_token": accessToken}
	c.JSON(http.StatusCreated, out)
}

// ListProjects handles GET /api/projects.
func (s *Server) ListProjects(c *gin.Context) {
	projects, err := s.client.Project.Query().
		Order(ent.Asc(entproject.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list projects: %w", err))
		return
	}
	out := make([]projectJSON, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectJSON(p))
	}
	c.JSON(http.StatusOK, gin.H{"projects": out})
}

// GetProject handles GET /api/projects/:id.
func (s *Server) GetProject(c *gin.Context) {
	proj, err := s.client.Project.Get(c.Request.Context(), c.Param("id"))
	if ent.IsNotFound(err) {
		_ = c.Error(apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found"))
		return
	}
	if err != nil {
		_ = c.Error(fmt.Errorf("fetch project: %w", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": toProjectJSON(proj)})
}

// DeleteProject handles DELETE /api/projects/:id.
func (s *Server) DeleteProject(c *gin.Context) {
	if err := s.deleteProjectUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadDocument handles POST /api/projects/:id/documents (multipart "file").
func (s *Server) UploadDocument(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := c.Param("id")

	if _, err := s.client.Project.Get(ctx, projectID); err != nil {
		_ = c.Error(apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found"))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed,
			"multipart field \"file\" is required"))
		return
	}
	if fh.Size > maxUploadBytes {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed,
			"file exceeds the upload limit"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		_ = c.Error(fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		_ = c.Error(fmt.Errorf("read upload: %w", err))
		return
	}

	key := storage.UploadKey(projectID, fh.Filename)
	if err := s.store.Put(ctx, key, data, "application/pdf"); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeStorageFailed,
			"store document", http.StatusServiceUnavailable))
		return
	}

	doc, err := s.client.Document.Create().
		SetID(uuid.NewString()).
		SetProjectID(projectID).
		SetFilename(fh.Filename).
		SetStorageKey(key).
		SetSha256(canonical.SHA256Hex(data)).
		Save(ctx)
	if err != nil {
		_ = c.Error(fmt.Errorf("create document: %w", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"document": toDocumentJSON(doc)})
}

// ListDocuments handles GET /api/projects/:id/documents.
func (s *Server) ListDocuments(c *gin.Context) {
	docs, err := s.client.Document.Query().
		Where(entdocument.HasProjectWith(entproject.ID(c.Param("id")))).
		Order(ent.Asc(entdocument.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list documents: %w", err))
		return
	}
	out := make([]documentJSON, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentJSON(d))
	}
	c.JSON(http.StatusOK, gin.H{"documents": out})
}
