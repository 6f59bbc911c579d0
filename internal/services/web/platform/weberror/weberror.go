// Package weberror renders localized error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	apperrors "github.com/empowereconomy/empower/internal/services/web/platform/errors"
	"github.com/empowereconomy/empower/internal/services/web/platform/httpx"
	webi18n "github.com/empowereconomy/empower/internal/services/web/platform/i18n"
	"github.com/empowereconomy/empower/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status gets a full error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage returns a visitor-safe localized message for err.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes the error page for a 404 or 5xx status. Other statuses
// are coerced to 500.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	state := templates.ErrorState(statusCode, loc)
	ctx := httpx.RequestContext(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	var err error
	if httpx.IsHTMXRequest(r) {
		err = state.Render(ctx, w)
	} else {
		err = templates.Layout(templates.LayoutOptions{
			Title: templates.ErrorPageTitle(statusCode, loc),
			Lang:  lang,
			Loc:   loc,
		}).Render(templ.WithChildren(ctx, state), w)
	}
	if err != nil {
		log.Printf("render error page status=%d request_id=%s err=%v", statusCode, httpx.RequestIDFrom(r), err)
	}
}

// WriteModuleError writes err as an error page or a plain localized message.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		if statusCode >= http.StatusInternalServerError {
			log.Printf("module error status=%d request_id=%s err=%v", statusCode, httpx.RequestIDFrom(r), err)
		}
		WriteAppError(w, r, statusCode)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
