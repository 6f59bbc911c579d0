package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/empowereconomy/empower/internal/onboarding"
	"github.com/empowereconomy/empower/internal/platform/branding"
)

const progressWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4F46E5")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	reachedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4F46E5")).
			Bold(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DC2626")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4F46E5")).
			Padding(1, 2)
)

func (m Model) View() string {
	if m.Done() {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(branding.AppName))
	b.WriteString("\n")
	b.WriteString(m.progressView())
	b.WriteString("\n")
	b.WriteString(m.indicatorView())
	b.WriteString("\n\n")
	b.WriteString(m.stepView())
	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errorText(m.err)))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.navLabels() + "   " + m.loc.Sprintf("onboarding.terminal.help")))
	return boxStyle.Render(b.String())
}

func (m Model) progressView() string {
	filled := int(m.wiz.Progress() / 100 * progressWidth)
	bar := reachedStyle.Render(strings.Repeat("█", filled)) + pendingStyle.Render(strings.Repeat("░", progressWidth-filled))
	return bar + " " + subtitleStyle.Render(m.loc.Sprintf("onboarding.progress", m.wiz.Cursor()+1, m.wiz.Len()))
}

func (m Model) indicatorView() string {
	parts := make([]string, 0, m.wiz.Len())
	for _, indicator := range m.wiz.Indicators() {
		title := m.loc.Sprintf("onboarding.step." + indicator.Step.Key())
		if indicator.Reached {
			parts = append(parts, reachedStyle.Render(title))
			continue
		}
		parts = append(parts, pendingStyle.Render(title))
	}
	return strings.Join(parts, pendingStyle.Render(" › "))
}

func (m Model) navLabels() string {
	back := "onboarding.nav.back"
	if m.wiz.Cursor() == 0 && m.wiz.HasExit() {
		back = "onboarding.nav.exit"
	}
	next := "onboarding.nav.next"
	if m.wiz.IsLast() {
		next = "onboarding.nav.finish"
	}
	return "← " + m.loc.Sprintf(back) + "  " + m.loc.Sprintf(next) + " →"
}

func (m Model) stepView() string {
	var b strings.Builder
	section := func(heading string, body string) {
		b.WriteString(titleStyle.Render(m.loc.Sprintf(heading)))
		if body != "" {
			b.WriteString("\n")
			b.WriteString(subtitleStyle.Render(m.loc.Sprintf(body)))
		}
		b.WriteString("\n\n")
	}
	data := m.wiz.Data()

	switch m.wiz.Current() {
	case onboarding.StepWelcome:
		section("onboarding.welcome.heading", "onboarding.welcome.body")
		b.WriteString(m.inputsView())
	case onboarding.StepDetails:
		section("onboarding.details.heading", "")
		b.WriteString(m.inputsView())
	case onboarding.StepGoals:
		section("onboarding.goals.heading", "onboarding.goals.body")
		for i, goal := range onboarding.Goals() {
			mark := "[ ]"
			if data.Goals.Has(goal) {
				mark = "[x]"
			}
			b.WriteString(m.choiceLine(i, mark, m.loc.Sprintf("onboarding.goal."+goal.Key())))
		}
	case onboarding.StepExperience:
		section("onboarding.experience.heading", "onboarding.experience.body")
		for i, level := range onboarding.ExperienceLevels() {
			mark := "( )"
			if data.Experience == level {
				mark = "(•)"
			}
			b.WriteString(m.choiceLine(i, mark, m.loc.Sprintf("onboarding.experience."+level.Key())))
		}
	case onboarding.StepConfirm:
		section("onboarding.confirm.heading", "onboarding.confirm.body")
		b.WriteString(reachedStyle.Render(m.wiz.Recommendation()))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(m.loc.Sprintf("onboarding.confirm.detail")))
	case onboarding.StepAccount:
		section("onboarding.account.heading", "onboarding.account.body")
		if m.emailForm {
			b.WriteString(m.inputsView())
			break
		}
		for i, provider := range m.providers {
			b.WriteString(m.choiceLine(i, "", m.loc.Sprintf("onboarding.account.oauth."+string(provider))))
		}
		b.WriteString(m.choiceLine(len(m.providers), "", m.loc.Sprintf("onboarding.account.email_option")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) choiceLine(idx int, mark string, label string) string {
	pointer := "  "
	if idx == m.cursor {
		pointer = cursorStyle.Render("> ")
	}
	if mark != "" {
		label = mark + " " + label
	}
	return pointer + label + "\n"
}

func (m Model) inputsView() string {
	lines := make([]string, 0, len(m.inputs))
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	return strings.Join(lines, "\n")
}
