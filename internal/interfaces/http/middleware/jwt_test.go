package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop/backend/internal/infrastructure/auth"
)

func setupJWTTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware(jwtService))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  GetJWTUserID(c),
			"username": GetJWTUsername(c),
			"role":     GetJWTRole(c),
		})
	})
	return r
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "shop-backend", time.Hour)
	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID, "alice", "USER")
	require.NoError(t, err)

	r := setupJWTTestRouter(jwtService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "alice")
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "shop-backend", time.Hour)

	r := setupJWTTestRouter(jwtService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_UNAUTHORIZED")
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "shop-backend", time.Hour)

	r := setupJWTTestRouter(jwtService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	expiredService := auth.NewJWTService("test-secret", "shop-backend", -time.Minute)
	token, err := expiredService.GenerateToken(uuid.New(), "alice", "USER")
	require.NoError(t, err)

	r := setupJWTTestRouter(auth.NewJWTService("test-secret", "shop-backend", time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_TOKEN_EXPIRED")
}

func TestRequireAdmin(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "shop-backend", time.Hour)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware(jwtService))
	admin := r.Group("/admin")
	admin.Use(RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("admin role passes", func(t *testing.T) {
		token, err := jwtService.GenerateToken(uuid.New(), "root", "ADMIN")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("user role is rejected", func(t *testing.T) {
		token, err := jwtService.GenerateToken(uuid.New(), "alice", "USER")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
	})
}
