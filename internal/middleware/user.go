package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/moodtrack/backend/internal/apierror"
	"github.com/moodtrack/backend/internal/logger"
)

// UserResolution resolves the requesting user from the X-User-ID header.
// The journal is single-tenant per user with no credential exchange; the
// header identifies whose data the request operates on. Requests without it
// are rejected before any handler runs.
func UserResolution() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			log := logger.FromContext(c.Request.Context())
			log.Debug("user resolution failed: missing X-User-ID header")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		c.Set("user_id", userID)

		ctx := logger.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
