package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	InvocationHeader = "X-Invocation-Id"
	invocationKey    = "invocationID"
)

// Invocation tags every request with a fresh id, echoed in the response header.
func Invocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(invocationKey, id)
		c.Header(InvocationHeader, id)
		c.Next()
	}
}

// InvocationID returns the id set by Invocation, or "" outside of it.
func InvocationID(c *gin.Context) string {
	return c.GetString(invocationKey)
}

// RequestLogger logs one line per request once the handler chain returns.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("invocation_id", InvocationID(c)),
		)
	}
}
