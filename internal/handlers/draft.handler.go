package handlers

import (
	"leasehold/internal/app"
	"leasehold/internal/assembler"
	draftController "leasehold/internal/controllers/drafts"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type DraftHandler struct {
	Handler
	draftController draftController.DraftControllerInterface
}

func NewDraftHandler(app app.App, router fiber.Router) *DraftHandler {
	log := logger.New("handlers").File("draft_handler")
	return &DraftHandler{
		draftController: app.Controllers.Draft,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

// Register exposes the applicant form. Drafts are public and addressed by id.
func (h *DraftHandler) Register() {
	drafts := h.router.Group("/drafts")

	drafts.Post("", h.createDraft)
	drafts.Get("/:id", h.getDraft)
	drafts.Patch("/:id", h.patchDraft)
	drafts.Post("/:id/groups/:group", h.addEntry)
	drafts.Patch("/:id/groups/:group/:entryId", h.editEntry)
	drafts.Delete("/:id/groups/:group/:entryId", h.removeEntry)
	drafts.Put("/:id/screening/:key", h.setScreeningAnswer)
	drafts.Post("/:id/submit", h.submitDraft)
}

func (h *DraftHandler) createDraft(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("createDraft")

	var req draftController.CreateDraftRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, log, err)
	}

	draft, err := h.draftController.Create(c.UserContext(), req.ListingID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(draft)
}

func (h *DraftHandler) getDraft(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("getDraft")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	draft, err := h.draftController.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(draft)
}

func (h *DraftHandler) patchDraft(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("patchDraft")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	var patch assembler.DraftPatch
	if err := parseBody(c, &patch); err != nil {
		return respondError(c, log, err)
	}

	draft, err := h.draftController.Patch(c.UserContext(), id, patch)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(draft)
}

func (h *DraftHandler) addEntry(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("addEntry")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	draft, err := h.draftController.AddEntry(c.UserContext(), id, c.Params("group"))
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(draft)
}

func (h *DraftHandler) editEntry(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("editEntry")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	entryID, err := parseID(c, "entryId")
	if err != nil {
		return respondError(c, log, err)
	}

	var req draftController.EditEntryRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, log, err)
	}

	draft, err := h.draftController.EditEntry(c.UserContext(), id, c.Params("group"), entryID, req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(draft)
}

func (h *DraftHandler) removeEntry(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("removeEntry")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	entryID, err := parseID(c, "entryId")
	if err != nil {
		return respondError(c, log, err)
	}

	draft, err := h.draftController.RemoveEntry(c.UserContext(), id, c.Params("group"), entryID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(draft)
}

func (h *DraftHandler) setScreeningAnswer(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("setScreeningAnswer")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	var req draftController.ScreeningAnswerRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, log, err)
	}

	draft, err := h.draftController.SetScreeningAnswer(c.UserContext(), id, c.Params("key"), req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(draft)
}

func (h *DraftHandler) submitDraft(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("submitDraft")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	application, err := h.draftController.Submit(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}
