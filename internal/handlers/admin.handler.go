package handlers

import (
	"leasehold/internal/app"
	adminController "leasehold/internal/controllers/admin"
	"leasehold/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Handler
	adminController adminController.AdminControllerInterface
}

func NewAdminHandler(app app.App, router fiber.Router) *AdminHandler {
	log := logger.New("handlers").File("admin_handler")
	return &AdminHandler{
		adminController: app.Controllers.Admin,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AdminHandler) Register() {
	admin := h.router.Group("/admin")

	admin.Post("/session", h.login)
	admin.Delete("/session", h.middleware.RequireAdmin(), h.logout)
	admin.Get("/dashboard", h.middleware.RequireAdmin(), h.dashboard)
}

func (h *AdminHandler) login(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("login")

	var req adminController.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, log, err)
	}

	session, err := h.adminController.Login(c.UserContext(), req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *AdminHandler) logout(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("logout")

	token := services.BearerToken(c.Get(fiber.HeaderAuthorization))
	if err := h.adminController.Logout(c.UserContext(), token); err != nil {
		return respondError(c, log, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandler) dashboard(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("dashboard")

	stats, err := h.adminController.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(stats)
}
