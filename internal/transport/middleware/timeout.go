package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout deadlines each request's context so slow store calls give up
// instead of holding the handler open. The duration comes from server
// config.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
