// Package identity resolves the caller identity for store operations.
package identity

import (
	"context"
	"os"

	"github.com/pomo-dev/pomo/internal/domain"
)

// EnvUser is the environment variable consulted when the config file
// does not name a user.
const EnvUser = "POMO_USER"

type ctxKey struct{}

// WithIdentity returns a context carrying an explicit identity override.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Ensure Resolver implements domain.IdentityResolver.
var _ domain.IdentityResolver = (*Resolver)(nil)

// Resolver resolves the current identity from, in order, a context
// override, the config file, and the POMO_USER environment variable.
type Resolver struct {
	configUser string
}

// NewResolver creates a Resolver backed by the configured user name.
func NewResolver(configUser string) *Resolver {
	return &Resolver{configUser: configUser}
}

// Resolve returns the current identity and whether one is present.
func (r *Resolver) Resolve(ctx context.Context) (domain.Identity, bool) {
	if id, ok := ctx.Value(ctxKey{}).(domain.Identity); ok && !id.IsNone() {
		return id, true
	}
	if r.configUser != "" {
		return domain.Identity(r.configUser), true
	}
	if user := os.Getenv(EnvUser); user != "" {
		return domain.Identity(user), true
	}
	return domain.None, false
}
