package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/empowereconomy/empower/internal/identity"
	"github.com/empowereconomy/empower/internal/onboarding"
	"github.com/empowereconomy/empower/internal/services/web/routepath"
)

// WizardFormID is the form every wizard control submits through.
const WizardFormID = "wizard-form"

// WizardCardID is the element HTMX swaps after each wizard action.
const WizardCardID = "onboarding"

// Notice is a one-time message shown above the step content.
type Notice struct {
	Kind    string
	Message string
}

// WizardView is the state needed to draw the wizard card.
type WizardView struct {
	Loc       Localizer
	Wizard    *onboarding.Wizard
	Notice    *Notice
	Providers []identity.Provider
}

// WizardPage wraps the card in the page shell used for full-page loads.
func WizardPage(view WizardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw(`<main class="onboarding-shell">`)
		h.component(ctx, WizardCard(view))
		h.raw(`</main>`)
		return h.err
	})
}

// WizardCard renders progress, the step indicator, exactly one step's content
// and the navigation controls.
func WizardCard(view WizardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		wiz := view.Wizard
		if wiz == nil {
			return nil
		}
		loc := view.Loc
		current := wiz.Current()
		h := newHTML(w)

		h.raw(`<section class="onboarding-card"`)
		h.attr("id", WizardCardID)
		h.attr("data-step", current.Key())
		h.intAttr("data-cursor", wiz.Cursor())
		h.attr("hx-target", "#"+WizardCardID)
		h.attr("hx-swap", "outerHTML")
		h.attr("hx-include", "#"+WizardFormID)
		h.raw(">")

		progress := strconv.FormatFloat(wiz.Progress(), 'f', 2, 64)
		h.raw(`<div class="progress" role="progressbar" aria-valuemin="0" aria-valuemax="100"`)
		h.attr("aria-valuenow", progress)
		h.raw(`><div class="progress-bar"`)
		h.attr("style", "width: "+progress+"%")
		h.raw(`></div></div><p class="progress-label">`)
		h.text(T(loc, "onboarding.progress", wiz.Cursor()+1, wiz.Len()))
		h.raw(`</p>`)

		h.raw(`<ol class="step-indicator">`)
		for _, indicator := range wiz.Indicators() {
			class := "step"
			if indicator.Reached {
				class += " reached"
			}
			h.raw("<li")
			h.attr("class", class)
			h.attr("data-step", indicator.Step.Key())
			if indicator.Active {
				h.attr("aria-current", "step")
			}
			h.raw(`><span class="step-icon">`)
			h.component(ctx, IconSVG(string(indicator.Definition.Icon), 16))
			h.raw(`</span><span class="step-title">`)
			h.text(T(loc, "onboarding.step."+indicator.Step.Key()))
			h.raw("</span></li>")
		}
		h.raw(`</ol>`)

		if view.Notice != nil && view.Notice.Message != "" {
			h.raw("<p")
			h.attr("class", "notice notice-"+view.Notice.Kind)
			h.raw(` role="status">`)
			h.text(view.Notice.Message)
			h.raw("</p>")
		}

		h.raw(`<form method="post"`)
		h.attr("id", WizardFormID)
		h.attr("action", routepath.OnboardingNext)
		h.attr("hx-post", routepath.OnboardingNext)
		h.raw(`></form>`)

		h.raw(`<div class="step-content"`)
		h.attr("data-step-content", current.Key())
		h.raw(">")
		h.component(ctx, stepContent(view, current))
		h.raw(`</div>`)

		h.raw(`<div class="wizard-nav"><button type="submit" class="button button-back" formnovalidate`)
		h.attr("form", WizardFormID)
		h.attr("formaction", routepath.OnboardingBack)
		h.attr("hx-post", routepath.OnboardingBack)
		h.flag("disabled", !wiz.CanGoBack())
		h.raw(">")
		h.component(ctx, IconSVG(IconChevronLeft, 16))
		h.text(T(loc, backLabelKey(wiz)))
		h.raw(`</button><button type="submit" class="button button-next"`)
		h.attr("form", WizardFormID)
		h.attr("hx-post", routepath.OnboardingNext)
		h.raw(">")
		h.text(T(loc, nextLabelKey(wiz)))
		h.component(ctx, IconSVG(IconChevronRight, 16))
		h.raw(`</button></div></section>`)
		return h.err
	})
}

func nextLabelKey(wiz *onboarding.Wizard) string {
	if wiz.IsLast() {
		return "onboarding.nav.finish"
	}
	return "onboarding.nav.next"
}

func backLabelKey(wiz *onboarding.Wizard) string {
	if wiz.Cursor() == 0 && wiz.HasExit() {
		return "onboarding.nav.exit"
	}
	return "onboarding.nav.back"
}

func stepContent(view WizardView, step onboarding.Step) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		loc := view.Loc
		data := view.Wizard.Data()
		h := newHTML(w)
		heading := func(key string) {
			h.raw("<h2>")
			h.text(T(loc, key))
			h.raw("</h2>")
		}
		paragraph := func(key string) {
			h.raw("<p>")
			h.text(T(loc, key))
			h.raw("</p>")
		}

		switch step {
		case onboarding.StepWelcome:
			heading("onboarding.welcome.heading")
			paragraph("onboarding.welcome.body")
			fieldInput(h, "number", onboarding.FieldAge, data.Age, T(loc, "onboarding.welcome.age_placeholder"))
		case onboarding.StepDetails:
			heading("onboarding.details.heading")
			fieldInput(h, "text", onboarding.FieldName, data.Name, T(loc, "onboarding.details.name_placeholder"))
			fieldInput(h, "email", onboarding.FieldEmail, data.Email, T(loc, "onboarding.details.email_placeholder"))
		case onboarding.StepGoals:
			heading("onboarding.goals.heading")
			paragraph("onboarding.goals.body")
			h.raw(`<div class="choice-grid">`)
			for _, goal := range onboarding.Goals() {
				choiceButton(h, "goal", string(goal), T(loc, "onboarding.goal."+goal.Key()), routepath.OnboardingGoalToggle, data.Goals.Has(goal))
			}
			h.raw(`</div>`)
		case onboarding.StepExperience:
			heading("onboarding.experience.heading")
			paragraph("onboarding.experience.body")
			h.raw(`<div class="choice-list">`)
			for _, level := range onboarding.ExperienceLevels() {
				choiceButton(h, "experience", string(level), T(loc, "onboarding.experience."+level.Key()), routepath.OnboardingExperience, data.Experience == level)
			}
			h.raw(`</div>`)
		case onboarding.StepConfirm:
			heading("onboarding.confirm.heading")
			paragraph("onboarding.confirm.body")
			h.raw(`<div class="recommendation"><h3>`)
			h.text(view.Wizard.Recommendation())
			h.raw("</h3><p>")
			h.text(T(loc, "onboarding.confirm.detail"))
			h.raw("</p></div>")
		case onboarding.StepAccount:
			heading("onboarding.account.heading")
			paragraph("onboarding.account.body")
			accountForms(h, view, data)
		}
		return h.err
	})
}

func fieldInput(h *htmlWriter, inputType string, name string, value string, placeholder string) {
	h.raw("<input")
	h.attr("type", inputType)
	h.attr("name", name)
	h.attr("value", value)
	h.attr("placeholder", placeholder)
	h.attr("form", WizardFormID)
	h.attr("hx-post", routepath.OnboardingFields)
	h.attr("hx-trigger", "change")
	h.attr("hx-swap", "none")
	h.raw(">")
}

func choiceButton(h *htmlWriter, name string, value string, label string, action string, selected bool) {
	class := "choice"
	if selected {
		class += " selected"
	}
	h.raw(`<button type="submit" formnovalidate`)
	h.attr("class", class)
	h.attr("form", WizardFormID)
	h.attr("name", name)
	h.attr("value", value)
	h.attr("formaction", action)
	h.attr("hx-post", action)
	h.attr("aria-pressed", strconv.FormatBool(selected))
	h.raw(">")
	h.text(label)
	h.raw("</button>")
}

func accountForms(h *htmlWriter, view WizardView, data onboarding.UserData) {
	loc := view.Loc
	h.raw(`<div class="oauth-options">`)
	for _, provider := range view.Providers {
		action := routepath.OnboardingOAuth(string(provider))
		h.raw(`<form method="post"`)
		h.attr("action", action)
		h.attr("hx-post", action)
		h.raw(`><button type="submit"`)
		h.attr("class", "button button-oauth oauth-"+string(provider))
		h.raw(">")
		h.text(T(loc, "onboarding.account.oauth."+string(provider)))
		h.raw("</button></form>")
	}
	h.raw(`</div><p class="divider">`)
	h.text(T(loc, "onboarding.account.divider"))
	h.raw(`</p><form class="account-form" method="post"`)
	h.attr("action", routepath.OnboardingAccountEmail)
	h.attr("hx-post", routepath.OnboardingAccountEmail)
	h.raw(`><input type="email" name="email" required`)
	h.attr("value", data.Email)
	h.attr("placeholder", T(loc, "onboarding.account.email_placeholder"))
	h.raw(`><input type="password" name="password" required autocomplete="new-password"`)
	h.attr("placeholder", T(loc, "onboarding.account.password_placeholder"))
	h.raw(`><button type="submit" class="button button-primary">`)
	h.text(T(loc, "onboarding.account.submit"))
	h.raw(`</button></form>`)
}
