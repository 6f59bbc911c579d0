package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/empowereconomy/empower/internal/platform/icons"
)

// Icon names understood by IconSVG.
const (
	IconPiggyBank    = "piggy-bank"
	IconTrendingUp   = "trending-up"
	IconDollarSign   = "dollar-sign"
	IconChevronLeft  = "chevron-left"
	IconChevronRight = "chevron-right"
)

// IconSVG renders a named icon; unknown names render nothing.
func IconSVG(name string, size int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		def, ok := icons.Lookup(name)
		if !ok {
			return nil
		}
		h := newHTML(w)
		h.raw(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"`)
		h.attr("width", strconv.Itoa(size))
		h.attr("height", strconv.Itoa(size))
		h.attr("data-icon", name)
		h.raw(">" + def.Paths + "</svg>")
		return h.err
	})
}
