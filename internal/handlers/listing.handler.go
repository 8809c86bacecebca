package handlers

import (
	"io"
	"strconv"

	"leasehold/internal/app"
	listingController "leasehold/internal/controllers/listings"
	"leasehold/internal/models"
	"leasehold/internal/services"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

const photosFormField = "photos"

type ListingHandler struct {
	Handler
	listingController listingController.ListingControllerInterface
}

func NewListingHandler(app app.App, router fiber.Router) *ListingHandler {
	log := logger.New("handlers").File("listing_handler")
	return &ListingHandler{
		listingController: app.Controllers.Listing,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ListingHandler) Register() {
	listings := h.router.Group("/listings")

	listings.Get("", h.listListings)
	listings.Get("/slug/:slug", h.getListingBySlug)
	listings.Get("/:id", h.getListing)
	listings.Post("", h.middleware.RequireAdmin(), h.createListing)
	listings.Put("/:id", h.middleware.RequireAdmin(), h.updateListing)
	listings.Post("/:id/photos", h.middleware.RequireAdmin(), h.uploadPhotos)
}

// listListings serves the public browser when public=true, forcing the
// active filter. Any other call is an admin listing query.
func (h *ListingHandler) listListings(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listListings")

	public, _ := strconv.ParseBool(c.Query("public"))

	var status *models.ListingStatus
	if public {
		active := models.ListingStatusActive
		status = &active
	} else {
		if _, err := h.middleware.Authorize(c); err != nil {
			return respondError(c, log, err)
		}
		if raw := c.Query("status"); raw != "" {
			filter := models.ListingStatus(raw)
			status = &filter
		}
	}

	listings, err := h.listingController.List(c.UserContext(), status)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(listings)
}

func (h *ListingHandler) getListing(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("getListing")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	listing, err := h.listingController.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(listing)
}

func (h *ListingHandler) getListingBySlug(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("getListingBySlug")

	listing, err := h.listingController.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(listing)
}

func (h *ListingHandler) createListing(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("createListing")

	var req listingController.CreateListingRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, log, err)
	}

	listing, err := h.listingController.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(listing)
}

func (h *ListingHandler) updateListing(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("updateListing")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	var req listingController.UpdateListingRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, log, err)
	}

	listing, err := h.listingController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(listing)
}

func (h *ListingHandler) uploadPhotos(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("uploadPhotos")

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, log, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, log, types.Validation("multipart form with %q files is required", photosFormField))
	}

	files := form.File[photosFormField]
	if len(files) == 0 {
		return respondError(c, log, types.Validation("at least one photo is required"))
	}

	uploads := make([]services.PhotoUpload, 0, len(files))
	closers := make([]io.Closer, 0, len(files))
	defer func() {
		for _, closer := range closers {
			_ = closer.Close()
		}
	}()

	for _, file := range files {
		body, err := file.Open()
		if err != nil {
			return respondError(c, log, types.Validation("could not read %q", file.Filename))
		}
		closers = append(closers, body)

		uploads = append(uploads, services.PhotoUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get(fiber.HeaderContentType),
			Size:        file.Size,
			Body:        body,
		})
	}

	listing, err := h.listingController.UploadPhotos(c.UserContext(), id, uploads)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(listing)
}
