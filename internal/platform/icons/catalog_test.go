package icons

import (
	"strings"
	"testing"

	"github.com/empowereconomy/empower/internal/onboarding"
)

func TestCatalogNamesAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for _, def := range Catalog() {
		if def.Name == "" || def.Paths == "" {
			t.Fatalf("incomplete definition %+v", def)
		}
		if _, ok := seen[def.Name]; ok {
			t.Fatalf("duplicate icon %q", def.Name)
		}
		seen[def.Name] = struct{}{}
		if strings.Contains(def.Paths, "<svg") {
			t.Fatalf("icon %q should hold inner markup only", def.Name)
		}
	}
}

func TestCatalogCoversStepIcons(t *testing.T) {
	for _, step := range onboarding.VariantAccount.Steps() {
		icon := step.Definition().Icon
		if _, ok := Lookup(string(icon)); !ok {
			t.Fatalf("missing icon %q for step %s", icon, step)
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	defs := Catalog()
	defs[0].Name = "changed"
	if Catalog()[0].Name == "changed" {
		t.Fatal("expected catalog copy")
	}
}
