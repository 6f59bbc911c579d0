package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/empowereconomy/empower/internal/services/web/routepath"
)

// ErrorPageTitle returns the document title for an error page.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, errorKey(statusCode)+".title")
}

// ErrorState renders the body of a 404 or 5xx page.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		key := errorKey(statusCode)
		h := newHTML(w)
		h.raw(`<main class="error-state"`)
		h.intAttr("data-status", normalizeErrorStatus(statusCode))
		h.raw("><h1>")
		h.text(T(loc, key+".title"))
		h.raw("</h1><p>")
		h.text(T(loc, key+".body"))
		h.raw(`</p><a class="button button-primary"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, "errors.page.home_link"))
		h.raw("</a></main>")
		return h.err
	})
}

func errorKey(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "errors.page.not_found"
	}
	return "errors.page.server"
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
