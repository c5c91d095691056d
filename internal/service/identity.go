package service

import (
	"context"

	"inventra/internal/model"
)

// IdentityIssuer is the seam where session or token state would attach to a
// successful login. The deployed system keeps no authentication state, so
// the wired implementation is a no-op; swapping it for a real session store
// requires no handler or service changes.
type IdentityIssuer interface {
	Issue(ctx context.Context, u *model.User) error
	Clear(ctx context.Context) error
}

type noopIssuer struct{}

// NewNoopIssuer returns the stateless issuer: Issue and Clear always succeed.
func NewNoopIssuer() IdentityIssuer { return noopIssuer{} }

func (noopIssuer) Issue(context.Context, *model.User) error { return nil }
func (noopIssuer) Clear(context.Context) error              { return nil }
