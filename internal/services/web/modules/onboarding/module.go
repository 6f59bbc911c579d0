// Package onboarding serves the wizard's form actions.
package onboarding

import (
	"net/http"

	"github.com/empowereconomy/empower/internal/identity"
	"github.com/empowereconomy/empower/internal/onboarding"
	module "github.com/empowereconomy/empower/internal/services/web/module"
	"github.com/empowereconomy/empower/internal/services/web/routepath"
	"github.com/empowereconomy/empower/internal/services/web/session"
)

// Config carries the module's collaborators.
type Config struct {
	Sessions  *session.Manager
	Delegator identity.Delegator
	Accounts  identity.AccountCreator
	Variant   onboarding.Variant
	// Providers lists the sign-in buttons on the account step.
	Providers []identity.Provider
}

// Module mounts the wizard routes under /onboarding/.
type Module struct {
	service  service
	handlers handlers
}

// New builds the module. Missing collaborators fall back to safe stand-ins.
func New(cfg Config) Module {
	svc := newService(cfg)
	return Module{service: svc, handlers: newHandlers(svc)}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "onboarding"
}

// Mount wires the wizard routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, m.handlers)
	return module.Mount{Prefix: routepath.OnboardingPrefix, Handler: mux}, nil
}

// Begin opens a fresh wizard for the visitor, prefilled with any known fields.
func (m Module) Begin(w http.ResponseWriter, r *http.Request, fields map[string]string) error {
	return m.service.begin(w, r, fields)
}

// ServeWizard writes the wizard as a full page for a visitor who started it.
func (m Module) ServeWizard(w http.ResponseWriter, r *http.Request, sess session.Session) {
	m.handlers.writeWizardPage(w, r, sess)
}
