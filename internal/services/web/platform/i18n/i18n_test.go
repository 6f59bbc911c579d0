package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		wantTag     string
		wantPersist bool
	}{
		{name: "default", target: "/", wantTag: "en-US"},
		{name: "query wins", target: "/?lang=pt-BR", cookie: "en-US", accept: "en-US", wantTag: "pt-BR", wantPersist: true},
		{name: "cookie before header", target: "/", cookie: "pt-BR", accept: "en-US", wantTag: "pt-BR"},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9,en;q=0.5", wantTag: "pt-BR"},
		{name: "unsupported query falls through", target: "/?lang=xx-invalid-", accept: "pt-BR", wantTag: "pt-BR"},
		{name: "unsupported header falls back", target: "/", accept: "ja", wantTag: "en-US"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag.String() != tc.wantTag {
				t.Fatalf("tag = %q, want %q", tag.String(), tc.wantTag)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestResolveLocalizerPersistsQueryChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	loc, lang := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	if lang != "pt-BR" {
		t.Fatalf("lang = %q, want %q", lang, "pt-BR")
	}
	if got := loc.Sprintf("onboarding.progress", 2, 6); got != "Etapa 2 de 6" {
		t.Fatalf("progress = %q, want %q", got, "Etapa 2 de 6")
	}
	if cookie := rr.Header().Get("Set-Cookie"); !strings.Contains(cookie, LangCookieName+"=pt-BR") {
		t.Fatalf("Set-Cookie = %q, want language cookie", cookie)
	}
}

func TestResolveLocalizerDefault(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	loc, lang := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if lang != "en-US" {
		t.Fatalf("lang = %q, want %q", lang, "en-US")
	}
	if got := loc.Sprintf("onboarding.nav.finish"); got != "Finish" {
		t.Fatalf("finish = %q, want %q", got, "Finish")
	}
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatalf("unexpected cookie for implicit language")
	}
}

func TestLanguageOptions(t *testing.T) {
	t.Parallel()

	loc, _ := ResolveLocalizer(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	options := LanguageOptions(loc, "pt-BR", "/")
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Tag != "en-US" || options[0].Label != "English" || options[0].Active {
		t.Fatalf("options[0] = %+v", options[0])
	}
	if !options[1].Active || options[1].URL != "/?lang=pt-BR" {
		t.Fatalf("options[1] = %+v", options[1])
	}
}
