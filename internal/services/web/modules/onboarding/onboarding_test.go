package onboarding

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/empowereconomy/empower/internal/identity"
	"github.com/empowereconomy/empower/internal/onboarding"
	"github.com/empowereconomy/empower/internal/services/web/platform/requestmeta"
	"github.com/empowereconomy/empower/internal/services/web/session"
)

func TestMountPrefix(t *testing.T) {
	t.Parallel()

	m := New(Config{})
	if m.ID() != "onboarding" {
		t.Fatalf("ID() = %q", m.ID())
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/onboarding/" || mount.Handler == nil {
		t.Fatalf("mount = %+v", mount)
	}
}

func TestNewServiceDefaults(t *testing.T) {
	t.Parallel()

	svc := newService(Config{})
	if svc.sessions == nil || svc.delegator == nil || svc.accounts == nil {
		t.Fatal("expected default collaborators")
	}
	if svc.variant != onboarding.VariantAccount {
		t.Fatalf("variant = %q, want %q", svc.variant, onboarding.VariantAccount)
	}
	if len(svc.providers) != 2 {
		t.Fatalf("providers = %v", svc.providers)
	}
}

func TestRestoreFallsBackToFreshWizard(t *testing.T) {
	t.Parallel()

	svc := newService(Config{Variant: onboarding.VariantAccount})
	broken := onboarding.New(onboarding.VariantAccount).State()
	broken.Cursor = 42

	wiz := svc.restore(session.Session{Wizard: broken}, func() {})
	if wiz.Cursor() != 0 || wiz.Len() != 6 {
		t.Fatalf("cursor = %d len = %d, want fresh account wizard", wiz.Cursor(), wiz.Len())
	}
	if !wiz.HasExit() {
		t.Fatal("restored wizard should keep the exit callback")
	}
}

func TestRestoreWiresExitForAccountVariantOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant  onboarding.Variant
		wantExit bool
	}{
		{variant: onboarding.VariantBasic, wantExit: false},
		{variant: onboarding.VariantAccount, wantExit: true},
	}
	for _, tc := range tests {
		svc := newService(Config{Variant: tc.variant})
		fresh := svc.restore(session.Session{}, func() {})
		stored := svc.restore(session.Session{Wizard: onboarding.New(tc.variant).State()}, func() {})
		for _, wiz := range []*onboarding.Wizard{fresh, stored} {
			if wiz.HasExit() != tc.wantExit {
				t.Fatalf("%s HasExit() = %v, want %v", tc.variant, wiz.HasExit(), tc.wantExit)
			}
			if wiz.CanGoBack() != tc.wantExit {
				t.Fatalf("%s CanGoBack() = %v, want %v", tc.variant, wiz.CanGoBack(), tc.wantExit)
			}
		}
	}
}

func TestBeginPrefillsKnownFields(t *testing.T) {
	t.Parallel()

	sessions := session.NewManager(nil, requestmeta.SchemePolicy{})
	m := New(Config{Sessions: sessions})

	rr := httptest.NewRecorder()
	if err := m.Begin(rr, httptest.NewRequest(http.MethodPost, "/signup", nil), map[string]string{"name": " Ana ", "email": "", "favorite": "x"}); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rr.Result().Cookies()[0])
	sess := sessions.Load(req)
	if !sess.ShowOnboarding {
		t.Fatal("expected onboarding flag")
	}
	if sess.Wizard.Data.Name != "Ana" {
		t.Fatalf("name = %q, want trimmed prefill", sess.Wizard.Data.Name)
	}
}

func TestApplyFieldsIgnoresAbsentFields(t *testing.T) {
	t.Parallel()

	wiz := onboarding.New(onboarding.VariantBasic)
	if err := wiz.SetField(onboarding.FieldName, "Mia"); err != nil {
		t.Fatalf("SetField() error = %v", err)
	}
	if err := applyFields(wiz, url.Values{"age": {"14"}}); err != nil {
		t.Fatalf("applyFields() error = %v", err)
	}
	if wiz.Data().Age != "14" || wiz.Data().Name != "Mia" {
		t.Fatalf("data = %+v", wiz.Data())
	}
}

func TestFieldsActionSavesWithoutMoving(t *testing.T) {
	t.Parallel()

	sessions := session.NewManager(nil, requestmeta.SchemePolicy{})
	m := New(Config{Sessions: sessions, Delegator: &identity.Recorder{}})
	started := httptest.NewRecorder()
	if err := m.Begin(started, httptest.NewRequest(http.MethodPost, "/start", nil), nil); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	cookie := started.Result().Cookies()[0]
	mount, _ := m.Mount()

	req := httptest.NewRequest(http.MethodPost, "/onboarding/fields", strings.NewReader("age=15"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	load := httptest.NewRequest(http.MethodGet, "/", nil)
	load.AddCookie(cookie)
	state := sessions.Load(load).Wizard
	if state.Cursor != 0 || state.Data.Age != "15" {
		t.Fatalf("state = %+v, want age saved on first step", state)
	}
}
