package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/empowereconomy/empower/internal/onboarding"
	"github.com/empowereconomy/empower/internal/services/web/platform/requestmeta"
	"github.com/empowereconomy/empower/internal/services/web/platform/sessioncookie"
)

func TestStoreEvictsOldestBeyondCapacity(t *testing.T) {
	t.Parallel()

	store := NewStore(2, time.Minute)
	store.Put(Session{ID: "a"})
	store.Put(Session{ID: "b"})
	store.Put(Session{ID: "c"})
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
	if _, ok := store.Get("a"); ok {
		t.Fatal("expected oldest session to be evicted")
	}
	if _, ok := store.Get("c"); !ok {
		t.Fatal("expected newest session to be kept")
	}
}

func TestStoreExpiresIdleEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(10, 20*time.Millisecond)
	store.Put(Session{ID: "a", ShowOnboarding: true})
	time.Sleep(60 * time.Millisecond)
	if _, ok := store.Get("a"); ok {
		t.Fatal("expected session to expire")
	}
}

func TestStoreIgnoresEmptyID(t *testing.T) {
	t.Parallel()

	store := NewStore(0, 0)
	store.Put(Session{})
	if store.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", store.Len())
	}
	if _, ok := store.Get(""); ok {
		t.Fatal("expected empty id to miss")
	}
}

func TestManagerSaveThenLoad(t *testing.T) {
	t.Parallel()

	manager := NewManager(NewStore(10, time.Minute), requestmeta.SchemePolicy{})
	manager.newID = func() string { return "sid-1" }

	rr := httptest.NewRecorder()
	saved := manager.Save(rr, httptest.NewRequest(http.MethodPost, "/start", nil), Session{
		ShowOnboarding: true,
		Wizard:         onboarding.New(onboarding.VariantAccount).State(),
	})
	if saved.ID != "sid-1" {
		t.Fatalf("ID = %q, want %q", saved.ID, "sid-1")
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != sessioncookie.Name {
		t.Fatalf("cookies = %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	loaded := manager.Load(req)
	if loaded != saved {
		t.Fatalf("Load() = %+v, want %+v", loaded, saved)
	}
	if !loaded.HasWizard() {
		t.Fatal("expected wizard snapshot")
	}
}

func TestManagerSaveSkipsCookieForKnownSession(t *testing.T) {
	t.Parallel()

	manager := NewManager(nil, requestmeta.SchemePolicy{})
	req := httptest.NewRequest(http.MethodPost, "/onboarding/next", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "sid-2"})
	rr := httptest.NewRecorder()
	manager.Save(rr, req, Session{ID: "sid-2", ShowOnboarding: true})
	if got := rr.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("Set-Cookie = %q, want none", got)
	}
}

func TestManagerLoadUnknownCookie(t *testing.T) {
	t.Parallel()

	manager := NewManager(nil, requestmeta.SchemePolicy{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "stale"})
	if got := manager.Load(req); got != (Session{}) {
		t.Fatalf("Load() = %+v, want empty", got)
	}
}

func TestManagerDiscard(t *testing.T) {
	t.Parallel()

	store := NewStore(10, time.Minute)
	manager := NewManager(store, requestmeta.SchemePolicy{})
	store.Put(Session{ID: "sid-3", ShowOnboarding: true})

	rr := httptest.NewRecorder()
	manager.Discard(rr, httptest.NewRequest(http.MethodPost, "/onboarding/back", nil), Session{ID: "sid-3"})
	if _, ok := store.Get("sid-3"); ok {
		t.Fatal("expected session removed")
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got %+v", cookies)
	}
}
