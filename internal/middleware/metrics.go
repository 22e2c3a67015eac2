package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/delote/beauty-web/pkg/metrics"
)

// Metrics records request counts and latency per route. The route template
// (c.FullPath) is used instead of the raw URL to keep label cardinality
// bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
