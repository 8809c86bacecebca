package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"leasehold/config"
	"leasehold/internal/repositories"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionIssuer = "leasehold"

type AdminSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionService issues and checks admin credentials. A bearer token is
// either the shared machine secret or a signed session token whose id is
// still live in the session cache.
type SessionService struct {
	config   config.Config
	sessions repositories.SessionRepository
	log      logger.Logger
	now      func() time.Time
}

func NewSessionService(
	config config.Config,
	sessions repositories.SessionRepository,
) *SessionService {
	return &SessionService{
		config:   config,
		sessions: sessions,
		log:      logger.New("sessionService"),
		now:      time.Now,
	}
}

func (s *SessionService) ttl() time.Duration {
	return time.Duration(s.config.SessionTTLMinutes) * time.Minute
}

func (s *SessionService) Login(ctx context.Context, password string) (AdminSession, error) {
	log := s.log.TraceFromContext(ctx).Function("Login")

	if s.config.AdminPassword == "" || !constantTimeEqual(password, s.config.AdminPassword) {
		log.Warn("Rejected admin login")
		return AdminSession{}, types.ErrUnauthorized
	}

	now := s.now()
	expiresAt := now.Add(s.ttl())
	sessionID := uuid.NewString()

	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Issuer:    sessionIssuer,
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.config.SessionSigningKey))
	if err != nil {
		return AdminSession{}, log.Err("failed to sign session token", err)
	}

	if err := s.sessions.Store(ctx, sessionID, now, s.ttl()); err != nil {
		return AdminSession{}, err
	}

	log.Info("Admin session issued", "sessionID", sessionID)
	return AdminSession{Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate resolves a bearer token to a principal or ErrUnauthorized.
func (s *SessionService) Authenticate(
	ctx context.Context,
	token string,
) (*types.AdminPrincipal, error) {
	if token == "" {
		return nil, types.ErrUnauthorized
	}

	if s.config.APISecretKey != "" && constantTimeEqual(token, s.config.APISecretKey) {
		return &types.AdminPrincipal{Kind: types.PrincipalMachine}, nil
	}

	claims, err := s.parse(token)
	if err != nil {
		return nil, types.ErrUnauthorized
	}

	live, err := s.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, types.ErrUnauthorized
	}

	return &types.AdminPrincipal{Kind: types.PrincipalSession, SessionID: claims.ID}, nil
}

// Revoke ends a session token. Machine secrets cannot be revoked.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	log := s.log.TraceFromContext(ctx).Function("Revoke")

	if s.config.APISecretKey != "" && constantTimeEqual(token, s.config.APISecretKey) {
		return nil
	}

	claims, err := s.parse(token)
	if err != nil {
		return types.ErrUnauthorized
	}

	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return err
	}

	log.Info("Admin session revoked", "sessionID", claims.ID)
	return nil
}

func (s *SessionService) parse(token string) (*jwt.RegisteredClaims, error) {
	if s.config.SessionSigningKey == "" {
		return nil, errors.New("session signing key not configured")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (any, error) {
			return []byte(s.config.SessionSigningKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if claims.ID == "" {
		return nil, errors.New("session token has no id")
	}

	return claims, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
