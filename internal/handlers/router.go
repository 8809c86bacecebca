package handlers

import (
	"leasehold/internal/app"
	"leasehold/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	router.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := router.Group("/api")
	HealthHandler(api, *app)
	NewListingHandler(*app, api).Register()
	NewApplicationHandler(*app, api).Register()
	NewDraftHandler(*app, api).Register()
	NewAdminHandler(*app, api).Register()

	return nil
}
