package onboarding

import (
	"strings"

	apperrors "github.com/empowereconomy/empower/internal/platform/errors"
)

// Step identifies the content rendered at one wizard position.
type Step int

const (
	// StepWelcome asks for the visitor's age.
	StepWelcome Step = iota
	// StepDetails collects name and email.
	StepDetails
	// StepGoals toggles financial goals.
	StepGoals
	// StepExperience selects one experience level.
	StepExperience
	// StepConfirm shows the course recommendation.
	StepConfirm
	// StepAccount offers OAuth or email/password account creation.
	StepAccount
)

// Icon names a symbol drawn next to a step title.
type Icon string

const (
	IconUser        Icon = "user"
	IconMail        Icon = "mail"
	IconTarget      Icon = "target"
	IconBookOpen    Icon = "book-open"
	IconCheckCircle Icon = "check-circle"
	IconUserPlus    Icon = "user-plus"
)

// Definition is the presentational metadata of a step.
type Definition struct {
	Title string
	Icon  Icon
}

var definitions = map[Step]Definition{
	StepWelcome:    {Title: "Welcome", Icon: IconUser},
	StepDetails:    {Title: "Details", Icon: IconMail},
	StepGoals:      {Title: "Goals", Icon: IconTarget},
	StepExperience: {Title: "Experience", Icon: IconBookOpen},
	StepConfirm:    {Title: "Confirm", Icon: IconCheckCircle},
	StepAccount:    {Title: "Account", Icon: IconUserPlus},
}

var stepKeys = map[Step]string{
	StepWelcome:    "welcome",
	StepDetails:    "details",
	StepGoals:      "goals",
	StepExperience: "experience",
	StepConfirm:    "confirm",
	StepAccount:    "account",
}

// Definition returns the step's title and icon.
func (s Step) Definition() Definition {
	return definitions[s]
}

// Key returns the stable lowercase identifier used in markup and catalogs.
func (s Step) Key() string {
	return stepKeys[s]
}

// String implements fmt.Stringer.
func (s Step) String() string {
	if key := s.Key(); key != "" {
		return key
	}
	return "unknown"
}

// Variant selects which steps a wizard walks through.
type Variant string

const (
	// VariantBasic ends at the recommendation.
	VariantBasic Variant = "basic"
	// VariantAccount appends the account-creation step.
	VariantAccount Variant = "account"
)

var variantSteps = map[Variant][]Step{
	VariantBasic:   {StepWelcome, StepDetails, StepGoals, StepExperience, StepConfirm},
	VariantAccount: {StepWelcome, StepDetails, StepGoals, StepExperience, StepConfirm, StepAccount},
}

// ParseVariant resolves a configured variant name.
func ParseVariant(raw string) (Variant, error) {
	variant := Variant(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := variantSteps[variant]; !ok {
		return "", apperrors.WithMetadata(apperrors.CodeOnboardingUnknownVariant, "unknown wizard variant", map[string]string{"Variant": raw})
	}
	return variant, nil
}

// Steps returns the ordered steps of the variant.
func (v Variant) Steps() []Step {
	steps := variantSteps[v]
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Len returns N, the number of steps in the variant.
func (v Variant) Len() int {
	return len(variantSteps[v])
}
