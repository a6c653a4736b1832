package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wayfarer-app/wayfarer-backend/config"
	"github.com/wayfarer-app/wayfarer-backend/internal/auth"
	"github.com/wayfarer-app/wayfarer-backend/logger"
)

// AuthMiddleware extracts the Bearer token from the Authorization header,
// validates it, and stores the resolved user ID in the gin context under
// UserIDKey. Requests without a valid token are rejected with 401 before
// any handler runs.
func AuthMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.GetLogger()

		var token string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			log.Warnw("No token provided in request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization required",
			})
			return
		}

		userID, err := auth.ValidateToken(token, cfg.JwtSecretKey)
		if err != nil {
			log.Warnw("Invalid bearer token",
				"error", err,
				"token", logger.MaskJWT(token),
				"path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID from the gin context, or ""
// if the auth middleware did not run.
func GetUserID(c *gin.Context) string {
	return c.GetString(string(UserIDKey))
}
