package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	webi18n "github.com/empowereconomy/empower/internal/services/web/platform/i18n"
	"github.com/empowereconomy/empower/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Title       string
	Lang        string
	Loc         Localizer
	CurrentPath string
	BodyClass   string
}

// Layout renders the full HTML document around the children in ctx.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", opts.Lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(opts.Title)
		h.raw(`</title>`)
		h.raw(`<link rel="stylesheet" href="` + routepath.Static + `app.css">`)
		h.raw(`<script src="` + htmxScriptURL + `" defer></script>`)
		h.raw(`</head><body`)
		if opts.BodyClass != "" {
			h.attr("class", opts.BodyClass)
		}
		h.raw(">")
		h.component(ctx, templ.GetChildren(ctx))
		h.component(ctx, languageSwitcher(opts))
		h.raw("</body></html>")
		return h.err
	})
}

func languageSwitcher(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw(`<nav class="language-switcher"`)
		h.attr("aria-label", T(opts.Loc, "core.language.label"))
		h.raw("><ul>")
		for _, option := range webi18n.LanguageOptions(opts.Loc, opts.Lang, opts.CurrentPath) {
			h.raw("<li><a")
			h.attr("href", option.URL)
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.attr("aria-current", "true")
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a></li>")
		}
		h.raw("</ul></nav>")
		return h.err
	})
}
