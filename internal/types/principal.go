package types

import "context"

type PrincipalKind string

const (
	PrincipalMachine PrincipalKind = "machine"
	PrincipalSession PrincipalKind = "session"
)

// AdminPrincipal is the capability granted to a request that passed admin
// authentication. Handlers receive it explicitly instead of re-reading
// headers.
type AdminPrincipal struct {
	Kind      PrincipalKind `json:"kind"`
	SessionID string        `json:"sessionId,omitempty"`
}

type principalKey struct{}

func ContextWithPrincipal(ctx context.Context, principal *AdminPrincipal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (*AdminPrincipal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*AdminPrincipal)
	return principal, ok && principal != nil
}

// ActorFromContext names the admin acting on the request for audit logs.
func ActorFromContext(ctx context.Context) string {
	principal, ok := PrincipalFromContext(ctx)
	switch {
	case !ok:
		return "anonymous"
	case principal.Kind == PrincipalSession && principal.SessionID != "":
		return string(principal.Kind) + ":" + principal.SessionID
	}
	return string(principal.Kind)
}
