package middleware

import (
	"cuidarte/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags each request with a correlation ID and
// stores a request-scoped logger carrying it in the Gin context.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("requestID", requestID)
		c.Set("logger", utils.GetLogger().With(zap.String("requestID", requestID)))
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}
