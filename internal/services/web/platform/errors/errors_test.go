package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	domainerrors "github.com/empowereconomy/empower/internal/platform/errors"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "unavailable", err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{name: "unknown kind", err: E(KindUnknown, "?"), want: http.StatusInternalServerError},
		{name: "plain error", err: stderrors.New("boom"), want: http.StatusInternalServerError},
		{
			name: "wrapped domain invalid argument",
			err:  fmt.Errorf("toggle: %w", domainerrors.New(domainerrors.CodeOnboardingUnknownGoal, "unknown goal")),
			want: http.StatusBadRequest,
		},
		{
			name: "domain unavailable",
			err:  domainerrors.New(domainerrors.CodeIdentityNotConfigured, "no delegator"),
			want: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindInvalidInput, " errors.page.home_link ", "x")); got != "errors.page.home_link" {
		t.Fatalf("LocalizationKey(EK) = %q", got)
	}
	domain := domainerrors.New(domainerrors.CodeIdentityUnknownProvider, "unknown provider")
	if got := LocalizationKey(domain); got != "errors.IDENTITY_UNKNOWN_PROVIDER" {
		t.Fatalf("LocalizationKey(domain) = %q", got)
	}
	if got := LocalizationKey(stderrors.New("boom")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
}

func TestErrorMessageFallsBackToKind(t *testing.T) {
	t.Parallel()

	if got := (Error{Kind: KindNotFound}).Error(); got != "not_found" {
		t.Fatalf("Error() = %q, want %q", got, "not_found")
	}
}
