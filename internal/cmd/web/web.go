// Package web wires configuration for the web command.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/empowereconomy/empower/internal/identity"
	"github.com/empowereconomy/empower/internal/onboarding"
	entrypoint "github.com/empowereconomy/empower/internal/platform/cmd"
	"github.com/empowereconomy/empower/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr        string `env:"EMPOWER_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	IdentityBaseURL string `env:"EMPOWER_WEB_IDENTITY_BASE_URL"`

	OAuthGoogleClientID     string `env:"EMPOWER_WEB_OAUTH_GOOGLE_CLIENT_ID"`
	OAuthGoogleClientSecret string `env:"EMPOWER_WEB_OAUTH_GOOGLE_CLIENT_SECRET"`
	OAuthGitHubClientID     string `env:"EMPOWER_WEB_OAUTH_GITHUB_CLIENT_ID"`
	OAuthGitHubClientSecret string `env:"EMPOWER_WEB_OAUTH_GITHUB_CLIENT_SECRET"`
	OAuthRedirectURL        string `env:"EMPOWER_WEB_OAUTH_REDIRECT_URL"`
	StateSecret             string `env:"EMPOWER_WEB_STATE_SECRET"`

	WizardVariant       string        `env:"EMPOWER_WEB_WIZARD_VARIANT" envDefault:"account"`
	SessionTTL          time.Duration `env:"EMPOWER_WEB_SESSION_TTL" envDefault:"30m"`
	SessionCapacity     int           `env:"EMPOWER_WEB_SESSION_CAPACITY" envDefault:"10000"`
	TrustForwardedProto bool          `env:"EMPOWER_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig reads env defaults and then flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.IdentityBaseURL, "identity-base-url", cfg.IdentityBaseURL, "Identity service base URL for hosted sign-in")
	fs.StringVar(&cfg.WizardVariant, "wizard-variant", cfg.WizardVariant, "Wizard variant: basic or account")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Idle lifetime of a wizard session")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto for cookie security")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		serverCfg, err := cfg.serverConfig()
		if err != nil {
			return err
		}
		server, err := web.NewServer(ctx, serverCfg)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		log.Printf("web listening addr=%s variant=%s", server.Addr(), serverCfg.Variant)
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func (c Config) serverConfig() (web.Config, error) {
	variant, err := onboarding.ParseVariant(c.WizardVariant)
	if err != nil {
		return web.Config{}, err
	}
	delegator, err := c.delegator()
	if err != nil {
		return web.Config{}, err
	}
	return web.Config{
		HTTPAddr:            c.HTTPAddr,
		Delegator:           delegator,
		Accounts:            identity.NewLoggingAccountCreator(log.Default()),
		Variant:             variant,
		SessionTTL:          c.SessionTTL,
		SessionCapacity:     c.SessionCapacity,
		TrustForwardedProto: c.TrustForwardedProto,
	}, nil
}

// delegator prefers direct OAuth clients, then a hosted identity service.
// Without either, sign-in buttons answer 503.
func (c Config) delegator() (identity.Delegator, error) {
	clients := map[identity.Provider]identity.ClientCredentials{}
	if id := strings.TrimSpace(c.OAuthGoogleClientID); id != "" {
		clients[identity.ProviderGoogle] = identity.ClientCredentials{ClientID: id, ClientSecret: c.OAuthGoogleClientSecret}
	}
	if id := strings.TrimSpace(c.OAuthGitHubClientID); id != "" {
		clients[identity.ProviderGitHub] = identity.ClientCredentials{ClientID: id, ClientSecret: c.OAuthGitHubClientSecret}
	}
	if len(clients) > 0 {
		delegator, err := identity.NewOAuth2Delegator(identity.OAuth2Config{
			RedirectURL: c.OAuthRedirectURL,
			StateSecret: []byte(c.StateSecret),
			Clients:     clients,
		})
		if err != nil {
			return nil, fmt.Errorf("configure oauth sign-in: %w", err)
		}
		return delegator, nil
	}
	if strings.TrimSpace(c.IdentityBaseURL) != "" {
		delegator, err := identity.NewHostedDelegator(c.IdentityBaseURL)
		if err != nil {
			return nil, fmt.Errorf("configure hosted sign-in: %w", err)
		}
		return delegator, nil
	}
	return identity.UnavailableDelegator{}, nil
}
