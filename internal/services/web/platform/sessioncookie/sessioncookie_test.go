package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/empowereconomy/empower/internal/services/web/platform/requestmeta"
)

func TestWriteThenRead(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), " sid-1 ", requestmeta.SchemePolicy{})
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode || cookie.Secure {
		t.Fatalf("cookie flags = %+v", cookie)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	got, ok := Read(req)
	if !ok || got != "sid-1" {
		t.Fatalf("Read() = %q, %v, want %q, true", got, ok, "sid-1")
	}
}

func TestWriteSecureBehindTrustedProxy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	Write(rr, req, "sid", requestmeta.SchemePolicy{TrustForwardedProto: true})
	if cookies := rr.Result().Cookies(); len(cookies) != 1 || !cookies[0].Secure {
		t.Fatalf("expected secure cookie, got %+v", cookies)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodGet, "/", nil), requestmeta.SchemePolicy{})
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
}

func TestReadMissing(t *testing.T) {
	t.Parallel()

	if _, ok := Read(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("expected missing cookie")
	}
	if _, ok := Read(nil); ok {
		t.Fatal("expected nil request to have no cookie")
	}
}
