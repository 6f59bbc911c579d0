package landing

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/empowereconomy/empower/internal/platform/i18n/catalog"
	"github.com/empowereconomy/empower/internal/services/web/templates"
)

//go:embed content.yaml
var embeddedContent []byte

// localized maps a locale to text.
type localized map[string]string

// in returns the text for locale, falling back to the base locale.
func (l localized) in(locale string) string {
	if text, ok := l[locale]; ok && text != "" {
		return text
	}
	return l[catalog.BaseLocale]
}

type courseEntry struct {
	ID          string    `yaml:"id"`
	Icon        string    `yaml:"icon"`
	Title       localized `yaml:"title"`
	Description localized `yaml:"description"`
}

type testimonialEntry struct {
	Name  string    `yaml:"name"`
	Age   int       `yaml:"age"`
	Quote localized `yaml:"quote"`
}

// Content is the editable copy of the landing page.
type Content struct {
	Courses      []courseEntry      `yaml:"courses"`
	Testimonials []testimonialEntry `yaml:"testimonials"`
}

// LoadContent parses the embedded landing copy.
func LoadContent() (Content, error) {
	return ParseContent(embeddedContent)
}

// ParseContent parses landing copy from YAML. Every entry needs base-locale text.
func ParseContent(data []byte) (Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return Content{}, fmt.Errorf("parse landing content: %w", err)
	}
	for idx, course := range content.Courses {
		if strings.TrimSpace(course.Title.in(catalog.BaseLocale)) == "" {
			return Content{}, fmt.Errorf("course %d (%s): %s title is required", idx, course.ID, catalog.BaseLocale)
		}
	}
	for idx, testimonial := range content.Testimonials {
		if strings.TrimSpace(testimonial.Quote.in(catalog.BaseLocale)) == "" {
			return Content{}, fmt.Errorf("testimonial %d (%s): %s quote is required", idx, testimonial.Name, catalog.BaseLocale)
		}
	}
	return content, nil
}

func (c Content) courses(locale string) []templates.Course {
	out := make([]templates.Course, 0, len(c.Courses))
	for _, course := range c.Courses {
		out = append(out, templates.Course{
			Title:       course.Title.in(locale),
			Description: course.Description.in(locale),
			Icon:        course.Icon,
		})
	}
	return out
}

func (c Content) testimonials(locale string) []templates.Testimonial {
	out := make([]templates.Testimonial, 0, len(c.Testimonials))
	for _, testimonial := range c.Testimonials {
		out = append(out, templates.Testimonial{
			Name:  testimonial.Name,
			Age:   testimonial.Age,
			Quote: testimonial.Quote.in(locale),
		})
	}
	return out
}
