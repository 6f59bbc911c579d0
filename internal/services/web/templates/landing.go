package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/empowereconomy/empower/internal/services/web/routepath"
)

// Course is one featured course card.
type Course struct {
	Title       string
	Description string
	Icon        string
}

// Testimonial is one student quote.
type Testimonial struct {
	Name  string
	Age   int
	Quote string
}

// LandingView is everything the landing page shows.
type LandingView struct {
	Loc          Localizer
	Courses      []Course
	Testimonials []Testimonial
	Year         int
}

// LandingPage renders the marketing surface.
func LandingPage(view LandingView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := view.Loc
		h := newHTML(w)

		h.raw(`<header class="site-header"><div class="container"><a class="brand"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, "core.app_name"))
		h.raw(`</a><nav class="site-nav">`)
		for _, link := range []struct{ href, key string }{
			{routepath.Root, "landing.nav.home"},
			{routepath.AnchorCourses, "landing.nav.courses"},
			{routepath.AnchorTestimonials, "landing.nav.testimonials"},
			{routepath.AnchorSignup, "landing.nav.signup"},
		} {
			h.raw("<a")
			h.attr("href", link.href)
			h.raw(">")
			h.text(T(loc, link.key))
			h.raw("</a>")
		}
		h.raw(`</nav></div></header><main>`)

		h.raw(`<section id="hero" class="hero"><h1>`)
		h.text(T(loc, "landing.hero.heading"))
		h.raw("</h1><p>")
		h.text(T(loc, "landing.hero.body"))
		h.raw(`</p><form method="post"`)
		h.attr("action", routepath.Start)
		h.attr("hx-post", routepath.Start)
		h.raw(`><button type="submit" class="button button-primary">`)
		h.text(T(loc, "landing.hero.cta"))
		h.raw(`</button></form></section>`)

		h.raw(`<section id="courses" class="courses"><h2>`)
		h.text(T(loc, "landing.courses.heading"))
		h.raw(`</h2><div class="card-grid">`)
		for _, course := range view.Courses {
			h.raw(`<article class="card course-card"><div class="card-icon">`)
			h.component(ctx, IconSVG(course.Icon, 40))
			h.raw("</div><h3>")
			h.text(course.Title)
			h.raw("</h3><p>")
			h.text(course.Description)
			h.raw("</p></article>")
		}
		h.raw(`</div></section>`)

		h.raw(`<section id="testimonials" class="testimonials"><h2>`)
		h.text(T(loc, "landing.testimonials.heading"))
		h.raw(`</h2><div class="card-grid">`)
		for _, testimonial := range view.Testimonials {
			h.raw(`<figure class="card testimonial"><blockquote>&#34;`)
			h.text(testimonial.Quote)
			h.raw(`&#34;</blockquote><figcaption>`)
			h.text(testimonial.Name + ", " + strconv.Itoa(testimonial.Age))
			h.raw("</figcaption></figure>")
		}
		h.raw(`</div></section>`)

		h.raw(`<section id="signup" class="signup"><h2>`)
		h.text(T(loc, "landing.signup.heading"))
		h.raw(`</h2><form class="signup-form" method="post"`)
		h.attr("action", routepath.Signup)
		h.attr("hx-post", routepath.Signup)
		h.raw(`><input type="text" name="name"`)
		h.attr("placeholder", T(loc, "landing.signup.name_placeholder"))
		h.raw(`><input type="email" name="email"`)
		h.attr("placeholder", T(loc, "landing.signup.email_placeholder"))
		h.raw(`><button type="submit" class="button button-accent">`)
		h.text(T(loc, "landing.signup.submit"))
		h.raw(`</button></form></section></main>`)

		h.raw(`<footer class="site-footer"><p>`)
		h.text(T(loc, "landing.footer.copyright", view.Year))
		h.raw(`</p></footer>`)
		return h.err
	})
}
