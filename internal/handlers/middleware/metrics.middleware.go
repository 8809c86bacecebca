package middleware

import (
	"strconv"
	"time"

	"leasehold/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// RequestMetrics records request latency labelled by the matched route
// pattern rather than the raw path.
func (m *Middleware) RequestMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		metrics.HTTPRequestDuration.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		return err
	}
}
