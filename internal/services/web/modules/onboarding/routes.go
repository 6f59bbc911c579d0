package onboarding

import (
	"net/http"

	"github.com/empowereconomy/empower/internal/services/web/platform/httpx"
	"github.com/empowereconomy/empower/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	post := func(path string, handler http.HandlerFunc) {
		mux.HandleFunc(http.MethodPost+" "+path, handler)
		mux.HandleFunc(http.MethodGet+" "+path, httpx.MethodNotAllowed(http.MethodPost))
	}
	post(routepath.OnboardingFields, h.handleFields)
	post(routepath.OnboardingNext, h.handleNext)
	post(routepath.OnboardingBack, h.handleBack)
	post(routepath.OnboardingGoalToggle, h.handleGoalToggle)
	post(routepath.OnboardingExperience, h.handleExperience)
	post(routepath.OnboardingOAuthPattern, h.handleOAuth)
	post(routepath.OnboardingAccountEmail, h.handleAccountEmail)

	mux.HandleFunc(http.MethodGet+" "+routepath.OnboardingPrefix+"{rest...}", h.handleNotFound)
}
