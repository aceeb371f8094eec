package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be measured
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// MetricsMiddleware records the latency of every request by method, route template and status.
func MetricsMiddleware(m *metrics.ExchangeMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		m.RequestDuration.
			WithLabelValues(c.Request.Method, routeLabel(c), strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// routeLabel is the matched route template, e.g. /accounts/:id. Unmatched requests share one
// label so random paths cannot blow up cardinality.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
