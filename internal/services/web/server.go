// Package web hosts the browser-facing landing page and onboarding wizard.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/empowereconomy/empower/internal/identity"
	"github.com/empowereconomy/empower/internal/onboarding"
	"github.com/empowereconomy/empower/internal/platform/timeouts"
	webapp "github.com/empowereconomy/empower/internal/services/web/app"
	"github.com/empowereconomy/empower/internal/services/web/modules"
	"github.com/empowereconomy/empower/internal/services/web/modules/landing"
	"github.com/empowereconomy/empower/internal/services/web/platform/httpx"
	"github.com/empowereconomy/empower/internal/services/web/platform/observability"
	"github.com/empowereconomy/empower/internal/services/web/platform/requestmeta"
	"github.com/empowereconomy/empower/internal/services/web/routepath"
	"github.com/empowereconomy/empower/internal/services/web/session"
	webstatic "github.com/empowereconomy/empower/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr  string
	Delegator identity.Delegator
	Accounts  identity.AccountCreator
	Variant   onboarding.Variant
	// SessionTTL is the idle lifetime of a visitor session.
	SessionTTL      time.Duration
	SessionCapacity int
	// TrustForwardedProto honors X-Forwarded-Proto when deciding cookie security.
	TrustForwardedProto bool
	Now                 func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default modules.
func NewHandler(cfg Config) (http.Handler, error) {
	content, err := landing.LoadContent()
	if err != nil {
		return nil, err
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	sessions := session.NewManager(session.NewStore(cfg.SessionCapacity, cfg.SessionTTL), policy)
	h, err := webapp.Composer{}.Compose(webapp.ComposeInput{
		Modules: modules.Default(modules.Dependencies{
			Sessions:  sessions,
			Delegator: cfg.Delegator,
			Accounts:  cfg.Accounts,
			Variant:   cfg.Variant,
			Content:   content,
			Now:       cfg.Now,
		}),
		Policy: policy,
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
