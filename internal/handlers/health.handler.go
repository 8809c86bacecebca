package handlers

import (
	"context"
	"time"

	"leasehold/internal/app"

	"github.com/gofiber/fiber/v2"
)

func HealthHandler(router fiber.Router, app app.App) {
	router.Get("/health", func(c *fiber.Ctx) error {
		response := fiber.Map{
			"status":  "ok",
			"version": app.Config.GeneralVersion,
			"service": "leasehold_api",
		}

		if app.Pinger != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()

			if err := app.Pinger.Ping(ctx); err != nil {
				response["status"] = "degraded"
				response["error"] = err.Error()
				return c.Status(fiber.StatusServiceUnavailable).JSON(response)
			}
		}

		return c.JSON(response)
	})
}
