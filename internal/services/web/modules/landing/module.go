// Package landing serves the marketing page, the wizard entry points and the
// health check.
package landing

import (
	"errors"
	"net/http"
	"time"

	module "github.com/empowereconomy/empower/internal/services/web/module"
	"github.com/empowereconomy/empower/internal/services/web/routepath"
	"github.com/empowereconomy/empower/internal/services/web/session"
)

// Wizard starts and renders the onboarding wizard on the landing page's behalf.
type Wizard interface {
	Begin(w http.ResponseWriter, r *http.Request, fields map[string]string) error
	ServeWizard(w http.ResponseWriter, r *http.Request, sess session.Session)
}

// Config carries the module's collaborators.
type Config struct {
	Sessions *session.Manager
	Wizard   Wizard
	Content  Content
	Now      func() time.Time
}

// Module mounts the root routes.
type Module struct {
	cfg Config
}

// New returns the landing module.
func New(cfg Config) Module {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return Module{cfg: cfg}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "landing"
}

// Mount wires the root routes.
func (m Module) Mount() (module.Mount, error) {
	if m.cfg.Sessions == nil {
		return module.Mount{}, errMissing("sessions")
	}
	if m.cfg.Wizard == nil {
		return module.Mount{}, errMissing("wizard")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.cfg))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

func errMissing(name string) error {
	return errors.New("landing module: " + name + " is required")
}
