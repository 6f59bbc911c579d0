package onboarding

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/empowereconomy/empower/internal/identity"
	"github.com/empowereconomy/empower/internal/onboarding"
	"github.com/empowereconomy/empower/internal/services/web/platform/requestmeta"
	"github.com/empowereconomy/empower/internal/services/web/session"
)

type service struct {
	sessions  *session.Manager
	delegator identity.Delegator
	accounts  identity.AccountCreator
	variant   onboarding.Variant
	providers []identity.Provider
}

func newService(cfg Config) service {
	svc := service{
		sessions:  cfg.Sessions,
		delegator: cfg.Delegator,
		accounts:  cfg.Accounts,
		variant:   cfg.Variant,
		providers: cfg.Providers,
	}
	if svc.sessions == nil {
		svc.sessions = session.NewManager(nil, requestmeta.SchemePolicy{})
	}
	if svc.delegator == nil {
		svc.delegator = identity.UnavailableDelegator{}
	}
	if svc.accounts == nil {
		svc.accounts = identity.NewLoggingAccountCreator(log.Default())
	}
	if svc.variant.Len() == 0 {
		svc.variant = onboarding.VariantAccount
	}
	if svc.providers == nil {
		svc.providers = identity.Providers()
	}
	return svc
}

// restore rebuilds the visitor's wizard, starting over when the stored
// snapshot is missing or no longer valid.
func (s service) restore(sess session.Session, onExit func()) *onboarding.Wizard {
	if sess.HasWizard() {
		if wiz, err := onboarding.Restore(sess.Wizard, exitOption(sess.Wizard.Variant, onExit)); err == nil {
			return wiz
		}
	}
	return onboarding.New(s.variant, exitOption(s.variant, onExit))
}

// exitOption lets Back leave the account wizard from its first step. The
// basic wizard keeps Back disabled there.
func exitOption(variant onboarding.Variant, onExit func()) onboarding.Option {
	if variant != onboarding.VariantAccount {
		return nil
	}
	return onboarding.WithExit(onExit)
}

func (s service) begin(w http.ResponseWriter, r *http.Request, fields map[string]string) error {
	sess := s.sessions.Load(r)
	wiz := onboarding.New(s.variant)
	for _, name := range onboarding.Fields() {
		if value := strings.TrimSpace(fields[name]); value != "" {
			if err := wiz.SetField(name, value); err != nil {
				return err
			}
		}
	}
	sess.ShowOnboarding = true
	sess.Wizard = wiz.State()
	s.sessions.Save(w, r, sess)
	return nil
}

// applyFields copies submitted free-text fields into the wizard.
func applyFields(wiz *onboarding.Wizard, form url.Values) error {
	for _, name := range onboarding.Fields() {
		values, ok := form[name]
		if !ok || len(values) == 0 {
			continue
		}
		if err := wiz.SetField(name, values[0]); err != nil {
			return err
		}
	}
	return nil
}

func (s service) signIn(ctx context.Context, rawProvider string) (string, error) {
	provider, err := identity.ParseProvider(rawProvider)
	if err != nil {
		return "", err
	}
	return s.delegator.SignIn(ctx, provider, identity.SignInOptions{CallbackURL: identity.DefaultCallbackURL})
}

func (s service) createAccount(ctx context.Context, email string, password string) error {
	return s.accounts.CreateAccount(ctx, identity.Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
}
