package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mmdatafocus/hatchery_backend/utils"
)

// RequestIdMiddleware tags each request with a correlation id, taking the
// caller's X-Request-ID when present.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.Request.Header.Get("X-Request-ID")
		if requestId == "" {
			requestId = uuid.NewString()
		}

		ctx := utils.SetCorrelationIdInContext(c.Request.Context(), requestId)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-ID", requestId)
		c.Next()
	}
}
