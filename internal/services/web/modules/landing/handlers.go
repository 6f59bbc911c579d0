package landing

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/empowereconomy/empower/internal/onboarding"
	apperrors "github.com/empowereconomy/empower/internal/services/web/platform/errors"
	"github.com/empowereconomy/empower/internal/services/web/platform/httpx"
	webi18n "github.com/empowereconomy/empower/internal/services/web/platform/i18n"
	"github.com/empowereconomy/empower/internal/services/web/platform/observability"
	"github.com/empowereconomy/empower/internal/services/web/platform/pagerender"
	"github.com/empowereconomy/empower/internal/services/web/platform/weberror"
	"github.com/empowereconomy/empower/internal/services/web/routepath"
	"github.com/empowereconomy/empower/internal/services/web/templates"
)

type handlers struct {
	cfg Config
}

func newHandlers(cfg Config) handlers {
	return handlers{cfg: cfg}
}

// handleRoot shows the wizard to visitors who started it and the landing page
// to everyone else.
func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	if sess := h.cfg.Sessions.Load(r); sess.ShowOnboarding {
		h.cfg.Wizard.ServeWizard(w, r, sess)
		return
	}
	err := pagerender.WriteModulePage(w, r, func(loc webi18n.Localizer, lang string) pagerender.ModulePage {
		return pagerender.ModulePage{
			TitleKey:  "landing.title",
			BodyClass: "landing",
			Page: templates.LandingPage(templates.LandingView{
				Loc:          loc,
				Courses:      h.cfg.Content.courses(lang),
				Testimonials: h.cfg.Content.testimonials(lang),
				Year:         h.cfg.Now().Year(),
			}),
		}
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func (h handlers) handleStart(w http.ResponseWriter, r *http.Request) {
	h.begin(w, r, "start", nil)
}

func (h handlers) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "invalid form body"))
		return
	}
	h.begin(w, r, "signup", map[string]string{
		onboarding.FieldName:  r.PostForm.Get(onboarding.FieldName),
		onboarding.FieldEmail: r.PostForm.Get(onboarding.FieldEmail),
	})
}

func (h handlers) begin(w http.ResponseWriter, r *http.Request, source string, fields map[string]string) {
	if err := h.cfg.Wizard.Begin(w, r, fields); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	observability.Event(r, "onboarding.begin", attribute.String("onboarding.source", source))
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}
