package branding

import (
	"testing"

	"github.com/empowereconomy/empower/internal/platform/i18n/catalog"
)

func TestAppNameMatchesCatalog(t *testing.T) {
	got, ok := catalog.Default().Message(catalog.BaseLocale, "core.app_name")
	if !ok {
		t.Fatal("expected core.app_name in base catalog")
	}
	if got != AppName {
		t.Fatalf("core.app_name = %q, want %q", got, AppName)
	}
}

func TestServiceName(t *testing.T) {
	if got := ServiceName("web"); got != "empower-web" {
		t.Fatalf("ServiceName() = %q, want %q", got, "empower-web")
	}
}
