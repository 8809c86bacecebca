package handlers

import (
	"leasehold/internal/app"
	applicationController "leasehold/internal/controllers/applications"
	"leasehold/internal/metrics"
	"leasehold/internal/models"
	"leasehold/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	Handler
	applicationController applicationController.ApplicationControllerInterface
	notesRequireAuth      bool
}

type UpdateStatusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

type AddNoteRequest struct {
	Note string `json:"note"`
}

func NewApplicationHandler(app app.App, router fiber.Router) *ApplicationHandler {
	log := logger.New("handlers").File("application_handler")
	return &ApplicationHandler{
		applicationController: app.Controllers.Application,
		notesRequireAuth:      app.Config.NotesRequireAuth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ApplicationHandler) Register() {
	applications := h.router.Group("/applications")

	applications.Post("", h.submitApplication)
	applications.Get("", h.middleware.RequireAdmin(), h.listApplications)
	applications.Get("/:id", h.middleware.RequireAdmin(), h.getApplication)
	applications.Put("/:id/status", h.middleware.RequireAdmin(), h.updateStatus)
	applications.Post("/:id/notes", h.addNote)
}

func (h *ApplicationHandler) submitApplication(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("submitApplication")

	var application models.Application
	if err := parseBody(c, &application); err != nil {
		return respondError(c, log, err)
	}

	created, err := h.applicationController.Submit(c.UserContext(), &application, metrics.SourcePayload)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ApplicationHandler) listApplications(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listApplications")

	var filter repositories.ApplicationFilter
	if raw := c.Query("status"); raw != "" {
		status := models.ApplicationStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("listing_id"); raw != "" {
		listingID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "listing_id must be a valid id",
			})
		}
		filter.ListingID = &listingID
	}

	applications, err := h.applicationController.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(applications)
}

func (h *ApplicationHandler) getApplication(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("getApplication")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	detail, err := h.applicationController.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(detail)
}

func (h *ApplicationHandler) updateStatus(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("updateStatus")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	var req UpdateStatusRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, log, err)
	}

	updated, err := h.applicationController.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(updated)
}

// addNote is admin only unless NOTES_REQUIRE_AUTH is switched off.
func (h *ApplicationHandler) addNote(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("addNote")

	if h.notesRequireAuth {
		if _, err := h.middleware.Authorize(c); err != nil {
			return respondError(c, log, err)
		}
	}

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	var req AddNoteRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, log, err)
	}

	note, err := h.applicationController.AddNote(c.UserContext(), id, req.Note)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(note)
}
