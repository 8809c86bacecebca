package middleware

import (
	"context"

	"leasehold/config"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

// Authenticator resolves a bearer token to an admin principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*types.AdminPrincipal, error)
}

type Middleware struct {
	Config config.Config
	auth   Authenticator
	log    logger.Logger
}

func New(config config.Config, auth Authenticator) Middleware {
	log := logger.New("middleware")

	return Middleware{
		Config: config,
		auth:   auth,
		log:    log,
	}
}
