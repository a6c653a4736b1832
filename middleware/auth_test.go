package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-app/wayfarer-backend/config"
	"github.com/wayfarer-app/wayfarer-backend/internal/auth"
	"github.com/wayfarer-app/wayfarer-backend/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.IsTest = true
	os.Exit(m.Run())
}

const testJWTSecret = "test-secret-key-for-middleware-tests"

func setupProtectedRouter(secret string) *gin.Engine {
	cfg := &config.ServerConfig{JwtSecretKey: secret}
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})
	return r
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := setupProtectedRouter(testJWTSecret)

	token, err := auth.GenerateToken("user-42", testJWTSecret, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := setupProtectedRouter(testJWTSecret)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization required")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := setupProtectedRouter(testJWTSecret)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization required")
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	r := setupProtectedRouter(testJWTSecret)

	token, err := auth.GenerateToken("user-42", "some-other-secret", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	r := setupProtectedRouter(testJWTSecret)

	token, err := auth.GenerateToken("user-42", testJWTSecret, -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}
