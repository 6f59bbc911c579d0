package web

import (
	"flag"
	"testing"
	"time"

	"github.com/empowereconomy/empower/internal/identity"
	"github.com/empowereconomy/empower/internal/onboarding"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.WizardVariant != "account" {
		t.Fatalf("WizardVariant = %q, want account", cfg.WizardVariant)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if cfg.SessionCapacity != 10000 {
		t.Fatalf("SessionCapacity = %d, want 10000", cfg.SessionCapacity)
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("EMPOWER_WEB_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("EMPOWER_WEB_WIZARD_VARIANT", "basic")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want flag value", cfg.HTTPAddr)
	}
	if cfg.WizardVariant != "basic" {
		t.Fatalf("WizardVariant = %q, want env value", cfg.WizardVariant)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("EMPOWER_WEB_SESSION_TTL", "soon")

	if _, err := ParseConfig(flag.NewFlagSet("web", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected invalid duration error")
	}
}

func TestServerConfigVariant(t *testing.T) {
	t.Parallel()

	cfg, err := Config{HTTPAddr: ":0", WizardVariant: "basic"}.serverConfig()
	if err != nil {
		t.Fatalf("serverConfig() error = %v", err)
	}
	if cfg.Variant != onboarding.VariantBasic {
		t.Fatalf("Variant = %q, want basic", cfg.Variant)
	}
	if _, err := (Config{WizardVariant: "deluxe"}).serverConfig(); err == nil {
		t.Fatal("expected unknown variant error")
	}
}

func TestDelegatorSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		check   func(identity.Delegator) bool
		wantErr bool
	}{
		{
			name:  "unavailable by default",
			cfg:   Config{},
			check: func(d identity.Delegator) bool { _, ok := d.(identity.UnavailableDelegator); return ok },
		},
		{
			name:  "hosted identity service",
			cfg:   Config{IdentityBaseURL: "https://id.example.com"},
			check: func(d identity.Delegator) bool { _, ok := d.(*identity.HostedDelegator); return ok },
		},
		{
			name: "oauth clients win",
			cfg: Config{
				IdentityBaseURL:     "https://id.example.com",
				OAuthGoogleClientID: "google-client",
				OAuthRedirectURL:    "https://id.example.com/oauth/callback",
				StateSecret:         "secret",
			},
			check: func(d identity.Delegator) bool { _, ok := d.(*identity.OAuth2Delegator); return ok },
		},
		{
			name:    "oauth without secret",
			cfg:     Config{OAuthGitHubClientID: "gh", OAuthRedirectURL: "https://id.example.com/cb"},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := tc.cfg.delegator()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("delegator() error = %v", err)
			}
			if !tc.check(d) {
				t.Fatalf("delegator = %T", d)
			}
		})
	}
}
