package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sealgate.io/sealgate/ent"
	entproject "sealgate.io/sealgate/ent/project"
	entprojectinvestor "sealgate.io/sealgate/ent/projectinvestor"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
)

type investorRequest struct {
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	Role          string                 `json:"role"`
	RoutingOrder  int                    `json:"routing_order"`
	UnitsInvested float64                `json:"units_invested"`
	Metadata      map[string]interface{} `json:"metadata"`
}

// CreateInvestor handles POST /api/projects/:id/investors.
func (s *Server) CreateInvestor(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := c.Param("id")

	var req investorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed,
			"name and email are required"))
		return
	}

	if _, err := s.client.Project.Get(ctx, projectID); err != nil {
		_ = c.Error(apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found"))
		return
	}

	create := s.client.ProjectInvestor.Create().
		SetID(uuid.NewString()).
		SetProjectID(projectID).
		SetName(req.Name).
		SetEmail(req.Email).
		SetUnitsInvested(req.UnitsInvested)
	if req.Role != "" {
		create.SetRole(req.Role)
	}
	if req.RoutingOrder > 0 {
		create.SetRoutingOrder(req.RoutingOrder)
	}
	if req.Metadata != nil {
		create.SetMetadata(req.Metadata)
	}
	inv, err := create.Save(ctx)
	if err != nil {
		_ = c.Error(fmt.Errorf("create investor: %w", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"investor": toInvestorJSON(inv)})
}

// ListInvestors handles GET /api/projects/:id/investors.
func (s *Server) ListInvestors(c *gin.Context) {
	investors, err := s.client.ProjectInvestor.Query().
		Where(entprojectinvestor.HasProjectWith(entproject.ID(c.Param("id")))).
		Order(ent.Asc(entprojectinvestor.FieldRoutingOrder), ent.Asc(entprojectinvestor.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list investors: %w", err))
		return
	}
	out := make([]investorJSON, 0, len(investors))
	for _, inv := range investors {
		out = append(out, toInvestorJSON(inv))
	}
	c.JSON(http.StatusOK, gin.H{"investors": out})
}

// UpdateInvestor handles PUT /api/projects/:id/investors/:investor_id.
func (s *Server) UpdateInvestor(c *gin.Context) {
	ctx := c.Request.Context()

	var req investorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid body"))
		return
	}

	inv, err := s.scopedInvestor(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	upd := s.client.ProjectInvestor.UpdateOneID(inv.ID)
	if req.Name != "" {
		upd.SetName(req.Name)
	}
	if req.Email != "" {
		upd.SetEmail(req.Email)
	}
	if req.Role != "" {
		upd.SetRole(req.Role)
	}
	if req.RoutingOrder > 0 {
		upd.SetRoutingOrder(req.RoutingOrder)
	}
	if req.UnitsInvested > 0 {
		upd.SetUnitsInvested(req.UnitsInvested)
	}
	if req.Metadata != nil {
		upd.SetMetadata(req.Metadata)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		_ = c.Error(fmt.Errorf("update investor: %w", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"investor": toInvestorJSON(updated)})
}

// DeleteInvestor handles DELETE /api/projects/:id/investors/:investor_id.
func (s *Server) DeleteInvestor(c *gin.Context) {
	inv, err := s.scopedInvestor(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := s.client.ProjectInvestor.DeleteOneID(inv.ID).Exec(c.Request.Context()); err != nil {
		_ = c.Error(fmt.Errorf("delete investor: %w", err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) scopedInvestor(c *gin.Context) (*ent.ProjectInvestor, error) {
	inv, err := s.client.ProjectInvestor.Query().
		Where(
			entprojectinvestor.ID(c.Param("investor_id")),
			entprojectinvestor.HasProjectWith(entproject.ID(c.Param("id"))),
		).
		Only(c.Request.Context())
	if ent.IsNotFound(err) {
		return nil, apperrors.NotFound(apperrors.CodeInvestorNotFound, "investor not found")
	}
	if err != nil {
		return nil, fmt.Errorf("fetch investor: %w", err)
	}
	return inv, nil
}
