package onboarding

import (
	apperrors "github.com/empowereconomy/empower/internal/platform/errors"
)

// recommendationSuffix follows the selected experience in the course title.
const recommendationSuffix = " Financial Management"

// Move reports what a navigation call did.
type Move int

const (
	// MoveNone leaves the cursor untouched.
	MoveNone Move = iota
	// MoveStep changed the cursor.
	MoveStep
	// MoveExit handed control to the exit callback.
	MoveExit
)

// State is a plain-value copy of a wizard, safe to store and restore.
type State struct {
	Variant Variant
	Cursor  int
	Data    UserData
}

// Option customizes a Wizard.
type Option func(*Wizard)

// WithExit registers the callback invoked when Back is pressed at the first step.
func WithExit(fn func()) Option {
	return func(w *Wizard) {
		w.onExit = fn
	}
}

// Wizard is the step cursor plus the profile being collected.
type Wizard struct {
	variant Variant
	steps   []Step
	cursor  int
	data    UserData
	onExit  func()
}

// New creates a wizard at the first step with empty user data.
func New(variant Variant, opts ...Option) *Wizard {
	if variant.Len() == 0 {
		variant = VariantBasic
	}
	w := &Wizard{
		variant: variant,
		steps:   variant.Steps(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Restore rebuilds a wizard from a stored State.
func Restore(state State, opts ...Option) (*Wizard, error) {
	if state.Variant.Len() == 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeOnboardingUnknownVariant, "unknown wizard variant", map[string]string{"Variant": string(state.Variant)})
	}
	if state.Cursor < 0 || state.Cursor >= state.Variant.Len() {
		return nil, apperrors.New(apperrors.CodeOnboardingStepOutOfRange, "wizard cursor out of range")
	}
	w := New(state.Variant, opts...)
	w.cursor = state.Cursor
	w.data = state.Data
	return w, nil
}

// State returns a copy of the wizard's current state.
func (w *Wizard) State() State {
	return State{Variant: w.variant, Cursor: w.cursor, Data: w.data}
}

// Variant returns the wizard's step set.
func (w *Wizard) Variant() Variant {
	return w.variant
}

// Cursor returns the zero-based step index.
func (w *Wizard) Cursor() int {
	return w.cursor
}

// Len returns the number of steps.
func (w *Wizard) Len() int {
	return len(w.steps)
}

// Current returns the step at the cursor.
func (w *Wizard) Current() Step {
	return w.steps[w.cursor]
}

// Data returns a copy of the collected profile.
func (w *Wizard) Data() UserData {
	return w.data
}

// IsLast reports whether the cursor sits on the final step.
func (w *Wizard) IsLast() bool {
	return w.cursor == len(w.steps)-1
}

// HasExit reports whether Back at the first step leaves the wizard.
func (w *Wizard) HasExit() bool {
	return w.onExit != nil
}

// CanGoBack reports whether Back does anything visible.
func (w *Wizard) CanGoBack() bool {
	return w.cursor > 0 || w.onExit != nil
}

// Next advances one step. It is a no-op on the last step.
func (w *Wizard) Next() Move {
	if w.cursor >= len(w.steps)-1 {
		return MoveNone
	}
	w.cursor++
	return MoveStep
}

// Back regresses one step. At the first step it invokes the exit callback,
// if any, and otherwise does nothing.
func (w *Wizard) Back() Move {
	if w.cursor > 0 {
		w.cursor--
		return MoveStep
	}
	if w.onExit == nil {
		return MoveNone
	}
	w.onExit()
	return MoveExit
}

// SetField overwrites one free-text field.
func (w *Wizard) SetField(name string, value string) error {
	switch name {
	case FieldAge:
		w.data.Age = value
	case FieldName:
		w.data.Name = value
	case FieldEmail:
		w.data.Email = value
	default:
		return apperrors.WithMetadata(apperrors.CodeOnboardingUnknownField, "unknown onboarding field", map[string]string{"Field": name})
	}
	return nil
}

// ToggleGoal flips membership of one goal.
func (w *Wizard) ToggleGoal(raw string) error {
	goal, err := ParseGoal(raw)
	if err != nil {
		return err
	}
	w.data.Goals = w.data.Goals.Toggle(goal)
	return nil
}

// SelectExperience replaces the selected experience level.
func (w *Wizard) SelectExperience(raw string) error {
	level, err := ParseExperience(raw)
	if err != nil {
		return err
	}
	w.data.Experience = level
	return nil
}

// NextLabel is the caption of the forward control.
func (w *Wizard) NextLabel() string {
	if w.IsLast() {
		return "Finish"
	}
	return "Next"
}

// BackLabel is the caption of the backward control.
func (w *Wizard) BackLabel() string {
	if w.cursor == 0 && w.onExit != nil {
		return "Exit"
	}
	return "Back"
}

// Progress returns the completion percentage including the current step.
func (w *Wizard) Progress() float64 {
	return float64(w.cursor+1) / float64(len(w.steps)) * 100
}

// Indicator is one entry of the step indicator.
type Indicator struct {
	Step       Step
	Definition Definition
	Reached    bool
	Active     bool
}

// Indicators describes every step relative to the cursor.
func (w *Wizard) Indicators() []Indicator {
	out := make([]Indicator, 0, len(w.steps))
	for idx, step := range w.steps {
		out = append(out, Indicator{
			Step:       step,
			Definition: step.Definition(),
			Reached:    idx <= w.cursor,
			Active:     idx == w.cursor,
		})
	}
	return out
}

// Recommendation derives the course title from the experience level.
func (w *Wizard) Recommendation() string {
	return Recommend(w.data.Experience)
}

// Recommend returns the course title for an experience level.
func Recommend(level Experience) string {
	return string(level) + recommendationSuffix
}
