package middleware

import (
	"errors"

	"leasehold/internal/services"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

const PrincipalKeyFiber = "AdminPrincipal"

// RequireAdmin rejects the request with 401 unless it carries a valid admin
// bearer token.
func (m *Middleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := m.Authorize(c); err != nil {
			return m.reject(c, err)
		}
		return c.Next()
	}
}

// Authorize checks the Authorization header and, on success, stores the
// principal in fiber locals and in the request context.
func (m *Middleware) Authorize(c *fiber.Ctx) (*types.AdminPrincipal, error) {
	log := logger.New("middleware").TraceFromContext(c.UserContext()).Function("Authorize")

	if principal := GetPrincipal(c); principal != nil {
		return principal, nil
	}

	token := services.BearerToken(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		log.Info("missing or malformed authorization header")
		return nil, types.ErrUnauthorized
	}

	if m.auth == nil {
		return nil, types.ErrUnauthorized
	}

	principal, err := m.auth.Authenticate(c.UserContext(), token)
	if err != nil {
		log.Info("admin authentication failed", "error", err.Error())
		return nil, err
	}

	c.Locals(PrincipalKeyFiber, principal)
	c.SetUserContext(types.ContextWithPrincipal(c.UserContext(), principal))

	return principal, nil
}

func (m *Middleware) reject(c *fiber.Ctx, err error) error {
	if errors.Is(err, types.ErrUnauthorized) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	_ = m.log.Function("reject").Err("failed to check admin session", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// GetPrincipal returns the authenticated admin, or nil.
func GetPrincipal(c *fiber.Ctx) *types.AdminPrincipal {
	principal, ok := c.Locals(PrincipalKeyFiber).(*types.AdminPrincipal)
	if !ok {
		return nil
	}
	return principal
}
