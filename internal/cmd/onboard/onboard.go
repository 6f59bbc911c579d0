// Package onboard wires configuration for the terminal onboarding command.
package onboard

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/empowereconomy/empower/internal/identity"
	"github.com/empowereconomy/empower/internal/onboarding"
	entrypoint "github.com/empowereconomy/empower/internal/platform/cmd"
	"github.com/empowereconomy/empower/internal/tui"
)

// Config holds the onboard command configuration.
type Config struct {
	Variant         string `env:"EMPOWER_ONBOARD_VARIANT" envDefault:"account"`
	Language        string `env:"EMPOWER_ONBOARD_LANG" envDefault:"en-US"`
	IdentityBaseURL string `env:"EMPOWER_ONBOARD_IDENTITY_BASE_URL"`
}

// ParseConfig reads env defaults and then flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Variant, "variant", cfg.Variant, "Wizard variant: basic or account")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "Display language")
	fs.StringVar(&cfg.IdentityBaseURL, "identity-base-url", cfg.IdentityBaseURL, "Identity service base URL for sign-in links")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the terminal wizard and prints where the visitor ended up.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceOnboard, func(ctx context.Context) error {
		wizardCfg, err := cfg.wizardConfig()
		if err != nil {
			return err
		}
		result, err := tui.Run(ctx, wizardCfg)
		if err != nil {
			return err
		}
		report(os.Stdout, message.NewPrinter(tui.MatchLanguage(wizardCfg.Language)), result)
		return nil
	})
}

func (c Config) wizardConfig() (tui.Config, error) {
	variant, err := onboarding.ParseVariant(c.Variant)
	if err != nil {
		return tui.Config{}, err
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return tui.Config{}, fmt.Errorf("parse language %q: %w", c.Language, err)
	}
	var delegator identity.Delegator = identity.UnavailableDelegator{}
	if c.IdentityBaseURL != "" {
		hosted, err := identity.NewHostedDelegator(c.IdentityBaseURL)
		if err != nil {
			return tui.Config{}, err
		}
		delegator = hosted
	}
	return tui.Config{
		Variant:   variant,
		Delegator: delegator,
		Accounts:  identity.NewLoggingAccountCreator(log.Default()),
		Language:  tag,
	}, nil
}

func report(w io.Writer, loc *message.Printer, result tui.Result) {
	switch result.Outcome {
	case tui.OutcomeSignIn:
		fmt.Fprintln(w, loc.Sprintf("onboarding.account.signin_link", result.SignInURL))
	case tui.OutcomeAccount:
		fmt.Fprintln(w, loc.Sprintf("onboarding.account.requested"))
	case tui.OutcomeFinished:
		fmt.Fprintln(w, loc.Sprintf("onboarding.terminal.done", result.Data.Name, result.Recommendation))
	}
}
