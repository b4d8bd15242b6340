package api

import (
	"time"

	"log/slog"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func AuthMiddleware() gin.HandlerFunc {
	config := keycloakauth.DefaultConfig()
	config.LoadFromEnv() // Loads KEYCLOAK_URL and KEYCLOAK_REALM

	config.SkipPaths = []string{"/health"}
	config.RequiredClaims = []string{"sub", "preferred_username"}

	tokenAuth := keycloakauth.SimpleAuthMiddleware(config)

	return func(c *gin.Context) {
		// If the upstream gateway already authenticated the user and
		// provided the ID, trust that header and skip JWT validation.
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set("userID", userID)
			c.Next()
			return
		}

		// Fallback to standard JWT based authentication.
		tokenAuth(c)
	}
}

// LoggingMiddleware tags every request with an ID and logs method, path,
// status and latency through slog.
func LoggingMiddleware() gin.HandlerFunc {
	log := slog.Default().With(slog.String("layer", "http"))

	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Info("request",
			"requestID", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
