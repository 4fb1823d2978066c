package systemuser

import (
	"context"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
)

type contextKey struct{}

func WithSystemUser(ctx context.Context, user domain.SystemUser) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

func FromContext(ctx context.Context) (domain.SystemUser, bool) {
	user, ok := ctx.Value(contextKey{}).(domain.SystemUser)
	return user, ok && user.ClientID != ""
}

// Context resolves the acting user from the request context, falling back to the
// configured system client when the request carries none.
type Context struct {
	fallback domain.SystemUser
}

func NewContext(fallbackClientID domain.ID) *Context {
	return &Context{fallback: domain.SystemUser{ClientID: fallbackClientID}}
}

func (c *Context) SystemUser(ctx context.Context) (domain.SystemUser, error) {
	if user, ok := FromContext(ctx); ok {
		return user, nil
	}
	if c.fallback.ClientID == "" {
		return domain.SystemUser{}, serviceerrors.NewInvalidRequestError("no system user in context")
	}
	return c.fallback, nil
}
