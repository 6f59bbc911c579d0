package identity

import (
	"context"
	"net/url"
	"strings"

	apperrors "github.com/empowereconomy/empower/internal/platform/errors"
)

// HostedDelegator redirects to an identity service that exposes
// `/signin/{provider}?callbackUrl=...` entry points.
type HostedDelegator struct {
	baseURL string
}

// NewHostedDelegator builds a delegator for the identity service at baseURL.
func NewHostedDelegator(baseURL string) (*HostedDelegator, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, apperrors.New(apperrors.CodeIdentityNotConfigured, "identity base url is required")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeIdentityNotConfigured, "identity base url is invalid", err)
	}
	return &HostedDelegator{baseURL: trimmed}, nil
}

// SignIn implements Delegator.
func (d *HostedDelegator) SignIn(_ context.Context, provider Provider, opts SignInOptions) (string, error) {
	if d == nil {
		return "", apperrors.New(apperrors.CodeIdentityNotConfigured, "identity delegator is not configured")
	}
	parsed, err := ParseProvider(string(provider))
	if err != nil {
		return "", err
	}
	query := url.Values{}
	query.Set("callbackUrl", normalizeCallbackURL(opts.CallbackURL))
	return d.baseURL + "/signin/" + url.PathEscape(string(parsed)) + "?" + query.Encode(), nil
}

// UnavailableDelegator rejects every sign-in. It backs deployments without
// any identity provider configured.
type UnavailableDelegator struct{}

// SignIn implements Delegator.
func (UnavailableDelegator) SignIn(context.Context, Provider, SignInOptions) (string, error) {
	return "", apperrors.New(apperrors.CodeIdentityNotConfigured, "identity provider is not configured")
}
