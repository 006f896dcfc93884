package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const adminTok = "admin-secret"

func adminRouter() *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/admin", RequireAdmin(adminTok), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": IsAdmin(c)})
	})
	return r
}

func TestRequireAdminHeader(t *testing.T) {
	r := adminRouter()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-Access-Token", adminTok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminQueryParam(t *testing.T) {
	r := adminRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin?token="+adminTok, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminMissingToken(t *testing.T) {
	r := adminRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminWrongToken(t *testing.T) {
	r := adminRouter()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-Access-Token", "guessed")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTokenEqualEmptyConfigured(t *testing.T) {
	// An unset expected token must never match, even against empty input.
	assert.False(t, tokenEqual("", ""))
	assert.False(t, tokenEqual("anything", ""))
}
