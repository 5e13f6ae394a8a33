package middleware

import (
	"strconv"
	"time"

	"event-booking/internal/monitoring"

	"github.com/gin-gonic/gin"
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// FullPath keeps the route template so :id params don't explode
		// label cardinality.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		monitoring.ObserveRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
