package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	t.Parallel()

	err := WithMetadata(CodeOnboardingUnknownGoal, "unknown goal", map[string]string{"Goal": "x"})
	if !stderrors.Is(err, New(CodeOnboardingUnknownGoal, "")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeOnboardingUnknownField, "")) {
		t.Fatal("expected different code not to match")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("token expired")
	err := Wrap(CodeIdentityStateInvalid, "invalid state", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if got := GetCode(fmt.Errorf("outer: %w", err)); got != CodeIdentityStateInvalid {
		t.Fatalf("GetCode() = %q, want %q", got, CodeIdentityStateInvalid)
	}
}

func TestGetCodeUnknownForPlainErrors(t *testing.T) {
	t.Parallel()

	if got := GetCode(fmt.Errorf("boom")); got != CodeUnknown {
		t.Fatalf("GetCode() = %q, want %q", got, CodeUnknown)
	}
	if got := GetCode(nil); got != CodeUnknown {
		t.Fatalf("GetCode(nil) = %q, want %q", got, CodeUnknown)
	}
}

func TestCodeCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code Code
		want Category
	}{
		{CodeOnboardingUnknownGoal, CategoryInvalidArgument},
		{CodeIdentityUnknownProvider, CategoryInvalidArgument},
		{CodeNotFound, CategoryNotFound},
		{CodeIdentityNotConfigured, CategoryUnavailable},
		{CodeUnknown, CategoryInternal},
	}
	for _, tc := range tests {
		if got := tc.code.Category(); got != tc.want {
			t.Fatalf("%s.Category() = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := CodeOnboardingUnknownGoal.LocalizationKey(); got != "errors.ONBOARDING_UNKNOWN_GOAL" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
}
