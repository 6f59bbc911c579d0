package landing

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/empowereconomy/empower/internal/services/web/platform/requestmeta"
	"github.com/empowereconomy/empower/internal/services/web/session"
)

type stubWizard struct {
	begun  []map[string]string
	served int
}

func (s *stubWizard) Begin(_ http.ResponseWriter, _ *http.Request, fields map[string]string) error {
	s.begun = append(s.begun, fields)
	return nil
}

func (s *stubWizard) ServeWizard(w http.ResponseWriter, _ *http.Request, _ session.Session) {
	s.served++
	w.WriteHeader(http.StatusTeapot)
}

func TestLoadContent(t *testing.T) {
	t.Parallel()

	content, err := LoadContent()
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	courses := content.courses("en-US")
	if len(courses) != 3 {
		t.Fatalf("courses = %d, want 3", len(courses))
	}
	if courses[0].Title != "Budgeting Basics" || courses[0].Icon != "piggy-bank" {
		t.Fatalf("courses[0] = %+v", courses[0])
	}
	testimonials := content.testimonials("en-US")
	if len(testimonials) != 2 || testimonials[0].Name != "Alex" || testimonials[0].Age != 16 {
		t.Fatalf("testimonials = %+v", testimonials)
	}
}

func TestContentFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	content, err := ParseContent([]byte(`
courses:
  - id: budgeting
    icon: piggy-bank
    title:
      en-US: "Budgeting Basics"
      pt-BR: "Orçamento Básico"
    description:
      en-US: "Plan every dollar."
`))
	if err != nil {
		t.Fatalf("ParseContent() error = %v", err)
	}
	course := content.courses("pt-BR")[0]
	if course.Title != "Orçamento Básico" {
		t.Fatalf("title = %q", course.Title)
	}
	if course.Description != "Plan every dollar." {
		t.Fatalf("description = %q, want base locale text", course.Description)
	}
}

func TestParseContentRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"bad yaml":            "courses: [",
		"course without base": "courses:\n  - id: x\n    title:\n      pt-BR: \"Só português\"\n",
		"quote without base":  "testimonials:\n  - name: Mia\n    age: 14\n    quote: {}\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseContent([]byte(data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestMountRequiresCollaborators(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Wizard: &stubWizard{}}).Mount(); err == nil || !strings.Contains(err.Error(), "sessions") {
		t.Fatalf("Mount() error = %v, want sessions error", err)
	}
	if _, err := New(Config{Sessions: session.NewManager(nil, requestmeta.SchemePolicy{})}).Mount(); err == nil || !strings.Contains(err.Error(), "wizard") {
		t.Fatalf("Mount() error = %v, want wizard error", err)
	}
}

func TestStartBeginsWizard(t *testing.T) {
	t.Parallel()

	wizard := &stubWizard{}
	h := mountTestHandler(t, Config{Sessions: session.NewManager(nil, requestmeta.SchemePolicy{}), Wizard: wizard})

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("name=Ana&email=ana%40example.com"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if len(wizard.begun) != 1 || wizard.begun[0]["name"] != "Ana" || wizard.begun[0]["email"] != "ana@example.com" {
		t.Fatalf("begun = %+v", wizard.begun)
	}
}

func TestRootServesWizardForStartedSession(t *testing.T) {
	t.Parallel()

	sessions := session.NewManager(nil, requestmeta.SchemePolicy{})
	wizard := &stubWizard{}
	h := mountTestHandler(t, Config{Sessions: sessions, Wizard: wizard, Now: func() time.Time { return time.Unix(0, 0) }})

	saved := httptest.NewRecorder()
	sessions.Save(saved, httptest.NewRequest(http.MethodGet, "/", nil), session.Session{ShowOnboarding: true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(saved.Result().Cookies()[0])
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTeapot || wizard.served != 1 {
		t.Fatalf("status = %d served = %d, want wizard", rr.Code, wizard.served)
	}
}

func mountTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	mount, err := New(cfg).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}
