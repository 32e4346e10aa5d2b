package middleware

import (
	"time"

	"mergington-activities/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request latency per method, route and status.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := handleError(c, c.Next())
		observability.ObserveHTTP(c.Method(), routeOf(c), c.Response().StatusCode(), time.Since(start))
		return err
	}
}

// handleError runs the app error handler so the response status is final
// before it is observed. The error is consumed.
func handleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	if herr := c.App().ErrorHandler(c, err); herr != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return nil
}
