package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Role is the portal role carried by the session token.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
)

// Context identifies the authenticated store behind a request. It is
// passed explicitly into every operation instead of being read from
// ambient session state.
type Context struct {
	StoreID uuid.UUID
	Role    Role
}

var ErrUnauthenticated = errors.New("no authenticated session")

type ctxKey struct{}

// With returns a copy of ctx carrying the session.
func With(ctx context.Context, ac Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, ac)
}

// FromContext retrieves the session placed by the middleware.
func FromContext(ctx context.Context) (Context, error) {
	ac, ok := ctx.Value(ctxKey{}).(Context)
	if !ok {
		return Context{}, ErrUnauthenticated
	}

	return ac, nil
}
