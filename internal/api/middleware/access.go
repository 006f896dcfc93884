package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"sealgate.io/sealgate/ent"
	apperrors "sealgate.io/sealgate/internal/pkg/errors"
)

// Gin context keys set by the access gate.
const (
	CtxKeyAdmin     = "access_admin"
	CtxKeyProjectID = "access_project_id"
)

// AccessToken extracts the caller's token from the X-Access-Token header or
// the token query parameter.
func AccessToken(c *gin.Context) string {
	if tok := c.GetHeader("X-Access-Token"); tok != "" {
		return tok
	}
	return c.Query("token")
}

// RequireAdmin admits only the admin access token.
func RequireAdmin(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := AccessToken(c)
		if tok == "" {
			abortWith(c, apperrors.Unauthorized(apperrors.CodeAccessTokenMissing,
				"access token required"))
			return
		}
		if !tokenEqual(tok, adminToken) {
			abortWith(c, apperrors.Forbidden(apperrors.CodeAdminRequired,
				"admin access required"))
			return
		}
		c.Set(CtxKeyAdmin, true)
		c.Next()
	}
}

// RequireProjectOrAdmin admits the admin token, or a project access token
// matching the :id path parameter's project.
func RequireProjectOrAdmin(entClient *ent.Client, adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := AccessToken(c)
		if tok == "" {
			abortWith(c, apperrors.Unauthorized(apperrors.CodeAccessTokenMissing,
				"access token required"))
			return
		}
		if tokenEqual(tok, adminToken) {
			c.Set(CtxKeyAdmin, true)
			c.Next()
			return
		}

		projectID := c.Param("id")
		proj, err := entClient.Project.Get(c.Request.Context(), projectID)
		if err != nil || !tokenEqual(tok, proj.AccessToken) {
			abortWith(c, apperrors.Forbidden(apperrors.CodeProjectScope,
				"token is not valid for this project"))
			return
		}
		c.Set(CtxKeyProjectID, proj.ID)
		c.Next()
	}
}

// IsAdmin reports whether the request authenticated with the admin token.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(CtxKeyAdmin)
}

func tokenEqual(a, b string) bool {
	return b != "" && subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	_ = c.Error(err)
	c.Abort()
}
