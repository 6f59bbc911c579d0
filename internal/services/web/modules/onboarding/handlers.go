package onboarding

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/empowereconomy/empower/internal/onboarding"
	apperrors "github.com/empowereconomy/empower/internal/services/web/platform/errors"
	"github.com/empowereconomy/empower/internal/services/web/platform/flash"
	"github.com/empowereconomy/empower/internal/services/web/platform/httpx"
	webi18n "github.com/empowereconomy/empower/internal/services/web/platform/i18n"
	"github.com/empowereconomy/empower/internal/services/web/platform/observability"
	"github.com/empowereconomy/empower/internal/services/web/platform/pagerender"
	"github.com/empowereconomy/empower/internal/services/web/platform/weberror"
	"github.com/empowereconomy/empower/internal/services/web/routepath"
	"github.com/empowereconomy/empower/internal/services/web/session"
	"github.com/empowereconomy/empower/internal/services/web/templates"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

// wizardAction mutates the restored wizard for one form post.
type wizardAction func(*onboarding.Wizard, *http.Request) error

func (h handlers) handleFields(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, "fields", func(*onboarding.Wizard, *http.Request) error { return nil })
}

func (h handlers) handleNext(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, "next", func(wiz *onboarding.Wizard, _ *http.Request) error {
		wiz.Next()
		return nil
	})
}

func (h handlers) handleBack(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, "back", func(wiz *onboarding.Wizard, _ *http.Request) error {
		wiz.Back()
		return nil
	})
}

func (h handlers) handleGoalToggle(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, "goal_toggle", func(wiz *onboarding.Wizard, r *http.Request) error {
		return wiz.ToggleGoal(r.PostForm.Get("goal"))
	})
}

func (h handlers) handleExperience(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, "experience", func(wiz *onboarding.Wizard, r *http.Request) error {
		return wiz.SelectExperience(r.PostForm.Get("experience"))
	})
}

// act runs one wizard action: submitted fields are applied first, then the
// action, then the state is saved. Leaving through Back at the first step
// discards the session and sends the visitor to the landing page.
func (h handlers) act(w http.ResponseWriter, r *http.Request, name string, action wizardAction) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "invalid form body"))
		return
	}
	sess := h.service.sessions.Load(r)
	if !sess.ShowOnboarding {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}

	exited := false
	wiz := h.service.restore(sess, func() {
		exited = true
		h.service.sessions.Discard(w, r, sess)
	})
	if err := applyFields(wiz, r.PostForm); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	if err := action(wiz, r); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	observability.Event(r, "onboarding."+name,
		attribute.String("onboarding.step", wiz.Current().Key()),
		attribute.Int("onboarding.cursor", wiz.Cursor()),
		attribute.Bool("onboarding.exited", exited),
	)
	if exited {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}

	sess.Wizard = wiz.State()
	h.service.sessions.Save(w, r, sess)
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	h.writeWizard(w, r, wiz, nil)
}

func (h handlers) handleOAuth(w http.ResponseWriter, r *http.Request) {
	location, err := h.service.signIn(r.Context(), r.PathValue("provider"))
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	observability.Event(r, "onboarding.oauth", attribute.String("identity.provider", r.PathValue("provider")))
	httpx.WriteExternalRedirect(w, r, location)
}

func (h handlers) handleAccountEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "invalid form body"))
		return
	}
	sess := h.service.sessions.Load(r)
	if !sess.ShowOnboarding {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	// Credentials go straight to the account creator; the profile and the
	// stored session are left untouched.
	wiz := h.service.restore(sess, func() {})
	if wiz.Current() != onboarding.StepAccount {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindInvalidInput, "onboarding.account.not_offered", "account creation is only offered on the account step"))
		return
	}
	if err := h.service.createAccount(r.Context(), r.PostForm.Get("email"), r.PostForm.Get("password")); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	observability.Event(r, "onboarding.account_requested")

	notice := flash.Success("onboarding.account.requested")
	if !httpx.IsHTMXRequest(r) {
		flash.Write(w, r, notice, h.service.sessions.Policy())
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	h.writeWizard(w, r, wiz, &notice)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// writeWizardPage renders the wizard for a full page load, consuming any
// pending flash notice.
func (h handlers) writeWizardPage(w http.ResponseWriter, r *http.Request, sess session.Session) {
	wiz := h.service.restore(sess, func() {})
	var notice *flash.Notice
	if pending, ok := flash.ReadAndClear(w, r, h.service.sessions.Policy()); ok {
		notice = &pending
	}
	h.writeWizard(w, r, wiz, notice)
}

func (h handlers) writeWizard(w http.ResponseWriter, r *http.Request, wiz *onboarding.Wizard, notice *flash.Notice) {
	err := pagerender.WriteModulePage(w, r, func(loc webi18n.Localizer, _ string) pagerender.ModulePage {
		view := templates.WizardView{
			Loc:       loc,
			Wizard:    wiz,
			Providers: h.service.providers,
		}
		if notice != nil {
			view.Notice = &templates.Notice{Kind: string(notice.Kind), Message: templates.T(loc, notice.Key)}
		}
		return pagerender.ModulePage{
			TitleKey:  "onboarding.title",
			BodyClass: "onboarding",
			Page:      templates.WizardPage(view),
			Fragment:  templates.WizardCard(view),
		}
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}
