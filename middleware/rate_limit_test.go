package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitedRouter(t *testing.T) (*gin.Engine, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	r := gin.New()
	r.Use(ErrorHandler())
	r.POST("/login", AuthRateLimiter(client, 3, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, mock
}

func doLogin(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("X-Forwarded-For", ip)
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRateLimiterUnderLimit(t *testing.T) {
	r, mock := setupRateLimitedRouter(t)

	key := "ratelimit:auth:10.0.0.1"
	mock.ExpectTxPipeline()
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, time.Minute).SetVal(true)
	mock.ExpectTxPipelineExec()

	w := doLogin(r, "10.0.0.1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Remaining"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRateLimiterOverLimit(t *testing.T) {
	r, mock := setupRateLimitedRouter(t)

	key := "ratelimit:auth:10.0.0.1"
	mock.ExpectTxPipeline()
	mock.ExpectIncr(key).SetVal(4)
	mock.ExpectExpire(key, time.Minute).SetVal(true)
	mock.ExpectTxPipelineExec()
	mock.ExpectTTL(key).SetVal(30 * time.Second)

	w := doLogin(r, "10.0.0.1")

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRateLimiterFailsOpen(t *testing.T) {
	// No expectations set, so every redis command errors. Logins must still
	// go through when the limiter's backend is unavailable.
	r, _ := setupRateLimitedRouter(t)

	w := doLogin(r, "10.0.0.1")

	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")
	c.Request.Header.Set("X-Real-IP", "10.0.0.3")

	assert.Equal(t, "203.0.113.7", getClientIP(c))
}
