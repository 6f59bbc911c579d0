// Package errors provides structured domain errors with localization keys.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Onboarding errors
	CodeOnboardingUnknownField      Code = "ONBOARDING_UNKNOWN_FIELD"
	CodeOnboardingUnknownGoal       Code = "ONBOARDING_UNKNOWN_GOAL"
	CodeOnboardingUnknownExperience Code = "ONBOARDING_UNKNOWN_EXPERIENCE"
	CodeOnboardingUnknownVariant    Code = "ONBOARDING_UNKNOWN_VARIANT"
	CodeOnboardingStepOutOfRange    Code = "ONBOARDING_STEP_OUT_OF_RANGE"

	// Identity errors
	CodeIdentityUnknownProvider     Code = "IDENTITY_UNKNOWN_PROVIDER"
	CodeIdentityCredentialsRequired Code = "IDENTITY_CREDENTIALS_REQUIRED"
	CodeIdentityStateInvalid        Code = "IDENTITY_STATE_INVALID"
	CodeIdentityNotConfigured       Code = "IDENTITY_NOT_CONFIGURED"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// Category groups codes so transports can map them to their own status space.
type Category string

const (
	CategoryInvalidArgument Category = "invalid_argument"
	CategoryNotFound        Category = "not_found"
	CategoryUnavailable     Category = "unavailable"
	CategoryInternal        Category = "internal"
)

// Category maps domain codes to transport-neutral categories.
func (c Code) Category() Category {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeOnboardingUnknownField,
		CodeOnboardingUnknownGoal,
		CodeOnboardingUnknownExperience,
		CodeOnboardingUnknownVariant,
		CodeOnboardingStepOutOfRange,
		CodeIdentityUnknownProvider,
		CodeIdentityCredentialsRequired,
		CodeIdentityStateInvalid:
		return CategoryInvalidArgument

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return CategoryNotFound

	// Unavailable - collaborator missing or down
	case CodeIdentityNotConfigured:
		return CategoryUnavailable

	default:
		return CategoryInternal
	}
}

// LocalizationKey returns the catalog key for the code's user-facing message.
func (c Code) LocalizationKey() string {
	return "errors." + string(c)
}
