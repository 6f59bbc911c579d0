package landing

import (
	"net/http"

	"github.com/empowereconomy/empower/internal/services/web/platform/httpx"
	"github.com/empowereconomy/empower/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)

	mux.HandleFunc(http.MethodPost+" "+routepath.Start, h.handleStart)
	mux.HandleFunc(http.MethodGet+" "+routepath.Start, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodPost+" "+routepath.Signup, h.handleSignup)
	mux.HandleFunc(http.MethodGet+" "+routepath.Signup, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodGet+" /{rest...}", h.handleNotFound)
}
