package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"

	apperrors "github.com/empowereconomy/empower/internal/platform/errors"
)

// stateTTL bounds how long a sign-in round trip may take.
const stateTTL = 10 * time.Minute

// ClientCredentials are the OAuth client registration for one provider.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
}

// OAuth2Config configures an OAuth2Delegator.
type OAuth2Config struct {
	// RedirectURL is the identity service endpoint that completes the code exchange.
	RedirectURL string
	// StateSecret signs the state parameter.
	StateSecret []byte
	Clients     map[Provider]ClientCredentials
	Now         func() time.Time
}

// OAuth2Delegator sends visitors straight to the provider's consent screen.
// The state parameter carries the provider and callback target, signed so
// the identity service completing the exchange can trust it.
type OAuth2Delegator struct {
	configs map[Provider]*oauth2.Config
	secret  []byte
	now     func() time.Time
}

// StateClaims is the payload of a signed sign-in state.
type StateClaims struct {
	Provider    string `json:"provider"`
	CallbackURL string `json:"callback_url"`
	jwt.RegisteredClaims
}

// NewOAuth2Delegator builds provider configs for every client with an ID.
func NewOAuth2Delegator(cfg OAuth2Config) (*OAuth2Delegator, error) {
	if len(cfg.StateSecret) == 0 {
		return nil, apperrors.New(apperrors.CodeIdentityNotConfigured, "state secret is required")
	}
	redirectURL := strings.TrimSpace(cfg.RedirectURL)
	if redirectURL == "" {
		return nil, apperrors.New(apperrors.CodeIdentityNotConfigured, "oauth redirect url is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	configs := make(map[Provider]*oauth2.Config, len(cfg.Clients))
	for provider, creds := range cfg.Clients {
		if strings.TrimSpace(creds.ClientID) == "" {
			continue
		}
		endpoint, scopes, err := providerEndpoint(provider)
		if err != nil {
			return nil, err
		}
		configs[provider] = &oauth2.Config{
			ClientID:     strings.TrimSpace(creds.ClientID),
			ClientSecret: strings.TrimSpace(creds.ClientSecret),
			Endpoint:     endpoint,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
		}
	}
	if len(configs) == 0 {
		return nil, apperrors.New(apperrors.CodeIdentityNotConfigured, "no oauth clients configured")
	}
	return &OAuth2Delegator{configs: configs, secret: cfg.StateSecret, now: now}, nil
}

func providerEndpoint(provider Provider) (oauth2.Endpoint, []string, error) {
	switch provider {
	case ProviderGoogle:
		return google.Endpoint, []string{"openid", "email", "profile"}, nil
	case ProviderGitHub:
		return github.Endpoint, []string{"read:user", "user:email"}, nil
	default:
		return oauth2.Endpoint{}, nil, apperrors.WithMetadata(apperrors.CodeIdentityUnknownProvider, "unknown identity provider", map[string]string{"Provider": string(provider)})
	}
}

// SignIn implements Delegator.
func (d *OAuth2Delegator) SignIn(_ context.Context, provider Provider, opts SignInOptions) (string, error) {
	parsed, err := ParseProvider(string(provider))
	if err != nil {
		return "", err
	}
	cfg, ok := d.configs[parsed]
	if !ok {
		return "", apperrors.WithMetadata(apperrors.CodeIdentityNotConfigured, "provider has no oauth client", map[string]string{"Provider": string(parsed)})
	}
	state, err := d.signState(parsed, normalizeCallbackURL(opts.CallbackURL))
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

func (d *OAuth2Delegator) signState(provider Provider, callbackURL string) (string, error) {
	issuedAt := d.now()
	claims := StateClaims{
		Provider:    string(provider),
		CallbackURL: callbackURL,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(stateTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.secret)
	if err != nil {
		return "", fmt.Errorf("sign oauth state: %w", err)
	}
	return signed, nil
}

// VerifyState validates a state parameter produced by SignIn.
func (d *OAuth2Delegator) VerifyState(raw string) (StateClaims, error) {
	claims := StateClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (any, error) {
		return d.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(d.now))
	if err != nil {
		return StateClaims{}, apperrors.Wrap(apperrors.CodeIdentityStateInvalid, "invalid oauth state", err)
	}
	if _, err := ParseProvider(claims.Provider); err != nil {
		return StateClaims{}, apperrors.Wrap(apperrors.CodeIdentityStateInvalid, "invalid oauth state provider", err)
	}
	return claims, nil
}
