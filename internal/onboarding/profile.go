package onboarding

import (
	"strings"

	apperrors "github.com/empowereconomy/empower/internal/platform/errors"
)

// Goal is one of the fixed financial goals a visitor can pick.
type Goal string

const (
	GoalEmergencies Goal = "Save for emergencies"
	GoalInvest      Goal = "Invest for the future"
	GoalDebt        Goal = "Pay off debt"
	GoalBudget      Goal = "Budget effectively"
	GoalCredit      Goal = "Understand credit"
)

var goals = []Goal{GoalEmergencies, GoalInvest, GoalDebt, GoalBudget, GoalCredit}

// Goals returns the goal enumeration in display order.
func Goals() []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals)
	return out
}

// ParseGoal resolves a submitted goal label.
func ParseGoal(raw string) (Goal, error) {
	trimmed := strings.TrimSpace(raw)
	for _, goal := range goals {
		if string(goal) == trimmed {
			return goal, nil
		}
	}
	return "", apperrors.WithMetadata(apperrors.CodeOnboardingUnknownGoal, "unknown goal", map[string]string{"Goal": raw})
}

var goalKeys = map[Goal]string{
	GoalEmergencies: "emergencies",
	GoalInvest:      "invest",
	GoalDebt:        "debt",
	GoalBudget:      "budget",
	GoalCredit:      "credit",
}

// Key returns the stable slug used in markup and catalogs.
func (g Goal) Key() string {
	return goalKeys[g]
}

func (g Goal) bit() GoalSet {
	for idx, goal := range goals {
		if goal == g {
			return 1 << idx
		}
	}
	return 0
}

// GoalSet is a membership set over the goal enumeration.
type GoalSet uint8

// Has reports membership.
func (s GoalSet) Has(goal Goal) bool {
	bit := goal.bit()
	return bit != 0 && s&bit != 0
}

// Toggle adds the goal when absent and removes it when present.
func (s GoalSet) Toggle(goal Goal) GoalSet {
	return s ^ goal.bit()
}

// Len returns the number of selected goals.
func (s GoalSet) Len() int {
	count := 0
	for _, goal := range goals {
		if s.Has(goal) {
			count++
		}
	}
	return count
}

// List returns the selected goals in enumeration order.
func (s GoalSet) List() []Goal {
	out := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		if s.Has(goal) {
			out = append(out, goal)
		}
	}
	return out
}

// Experience is the visitor's self-reported finance experience.
type Experience string

const (
	// ExperienceUnset is the zero value before any selection.
	ExperienceUnset        Experience = ""
	ExperienceBeginner     Experience = "Beginner"
	ExperienceIntermediate Experience = "Intermediate"
	ExperienceAdvanced     Experience = "Advanced"
)

var experienceLevels = []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}

// ExperienceLevels returns the selectable levels in display order.
func ExperienceLevels() []Experience {
	out := make([]Experience, len(experienceLevels))
	copy(out, experienceLevels)
	return out
}

// Key returns the lowercase slug used in markup and catalogs.
func (e Experience) Key() string {
	return strings.ToLower(string(e))
}

// ParseExperience resolves a submitted experience level.
func ParseExperience(raw string) (Experience, error) {
	trimmed := strings.TrimSpace(raw)
	for _, level := range experienceLevels {
		if string(level) == trimmed {
			return level, nil
		}
	}
	return ExperienceUnset, apperrors.WithMetadata(apperrors.CodeOnboardingUnknownExperience, "unknown experience level", map[string]string{"Experience": raw})
}

// UserData is the profile collected by the wizard.
type UserData struct {
	Age        string
	Name       string
	Email      string
	Goals      GoalSet
	Experience Experience
}

// Field names accepted by Wizard.SetField.
const (
	FieldAge   = "age"
	FieldName  = "name"
	FieldEmail = "email"
)

// Fields lists the free-text fields in form order.
func Fields() []string {
	return []string{FieldAge, FieldName, FieldEmail}
}
