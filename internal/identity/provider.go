package identity

import (
	"context"
	"strings"

	apperrors "github.com/empowereconomy/empower/internal/platform/errors"
)

// DefaultCallbackURL is where the identity provider sends the visitor after sign-in.
const DefaultCallbackURL = "/dashboard"

// Provider names an OAuth identity provider.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGitHub Provider = "github"
)

// Providers returns the supported providers in display order.
func Providers() []Provider {
	return []Provider{ProviderGoogle, ProviderGitHub}
}

// ParseProvider resolves a provider identifier.
func ParseProvider(raw string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(raw))) {
	case ProviderGoogle:
		return ProviderGoogle, nil
	case ProviderGitHub:
		return ProviderGitHub, nil
	default:
		return "", apperrors.WithMetadata(apperrors.CodeIdentityUnknownProvider, "unknown identity provider", map[string]string{"Provider": raw})
	}
}

// SignInOptions are passed along to the identity provider.
type SignInOptions struct {
	CallbackURL string
}

// Delegator starts a sign-in with an external identity provider and returns
// the URL the visitor must be sent to.
type Delegator interface {
	SignIn(ctx context.Context, provider Provider, opts SignInOptions) (string, error)
}

// normalizeCallbackURL keeps callbacks on-site: a single leading slash path.
func normalizeCallbackURL(raw string) string {
	callback := strings.TrimSpace(raw)
	if callback == "" || !strings.HasPrefix(callback, "/") || strings.HasPrefix(callback, "//") {
		return DefaultCallbackURL
	}
	return callback
}
