// Package pagerender writes module pages as full documents or HTMX fragments.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/empowereconomy/empower/internal/services/web/platform/httpx"
	webi18n "github.com/empowereconomy/empower/internal/services/web/platform/i18n"
	"github.com/empowereconomy/empower/internal/services/web/templates"
)

// ModulePage describes one page response.
type ModulePage struct {
	// TitleKey is the catalog key of the document title.
	TitleKey   string
	StatusCode int
	BodyClass  string
	// Page is rendered inside the layout on full-page loads.
	Page templ.Component
	// Fragment replaces Page for HTMX requests; Page is used when nil.
	Fragment templ.Component
}

// Build produces a page once the request language is known.
type Build func(loc webi18n.Localizer, lang string) ModulePage

// WriteModulePage resolves the request language and writes the page.
func WriteModulePage(w http.ResponseWriter, r *http.Request, build Build) error {
	if w == nil || build == nil {
		return nil
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	page := build(loc, lang)
	status := page.StatusCode
	if status <= 0 {
		status = http.StatusOK
	}
	ctx := httpx.RequestContext(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if httpx.IsHTMXRequest(r) {
		fragment := page.Fragment
		if fragment == nil {
			fragment = page.Page
		}
		w.WriteHeader(status)
		if fragment == nil {
			return nil
		}
		return fragment.Render(ctx, w)
	}

	body := page.Page
	if body == nil {
		body = templ.NopComponent
	}
	path := "/"
	if r != nil {
		path = r.URL.Path
	}
	w.WriteHeader(status)
	return templates.Layout(templates.LayoutOptions{
		Title:       templates.T(loc, page.TitleKey),
		Lang:        lang,
		Loc:         loc,
		CurrentPath: path,
		BodyClass:   page.BodyClass,
	}).Render(templ.WithChildren(ctx, body), w)
}
