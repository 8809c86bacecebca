package handlers

import (
	"errors"

	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// statusFor maps the service error kinds onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, types.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, types.ErrNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// respondError writes the single {"error": ...} body. Store failures are
// passed through with their original message.
func respondError(c *fiber.Ctx, log logger.Logger, err error) error {
	status := statusFor(err)
	message := err.Error()
	switch status {
	case fiber.StatusInternalServerError:
		log.Er("request failed", err)
	case fiber.StatusUnauthorized:
		message = "Authentication required"
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, types.Validation("%s must be a valid id", param)
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return types.Validation("invalid request body")
	}
	return nil
}
