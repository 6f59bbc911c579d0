// Package tui runs the onboarding wizard in a terminal.
package tui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/empowereconomy/empower/internal/identity"
	"github.com/empowereconomy/empower/internal/onboarding"
	apperrors "github.com/empowereconomy/empower/internal/platform/errors"
	"github.com/empowereconomy/empower/internal/platform/i18n/catalog"
)

// Outcome says how a terminal session ended.
type Outcome string

const (
	OutcomeQuit     Outcome = "quit"
	OutcomeExited   Outcome = "exited"
	OutcomeFinished Outcome = "finished"
	OutcomeSignIn   Outcome = "sign_in"
	OutcomeAccount  Outcome = "account"
)

// Result is what the visitor entered and where they ended up.
type Result struct {
	Outcome        Outcome
	Data           onboarding.UserData
	Recommendation string
	// SignInURL is set when the visitor chose an identity provider.
	SignInURL    string
	AccountEmail string
}

// Config carries the wizard's collaborators.
type Config struct {
	Variant   onboarding.Variant
	Delegator identity.Delegator
	Accounts  identity.AccountCreator
	Providers []identity.Provider
	Language  language.Tag
}

// Model is the bubbletea model wrapping one onboarding.Wizard.
type Model struct {
	ctx       context.Context
	wiz       *onboarding.Wizard
	delegator identity.Delegator
	accounts  identity.AccountCreator
	providers []identity.Provider
	loc       *message.Printer

	inputs    []textinput.Model
	fields    []string
	focus     int
	cursor    int
	emailForm bool
	err       error
	width     int
	result    Result
}

const (
	fieldAccountEmail    = "account_email"
	fieldAccountPassword = "account_password"
)

// New builds a model on the first step of cfg.Variant.
func New(ctx context.Context, cfg Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	variant := cfg.Variant
	if variant.Len() == 0 {
		variant = onboarding.VariantAccount
	}
	delegator := cfg.Delegator
	if delegator == nil {
		delegator = identity.UnavailableDelegator{}
	}
	accounts := cfg.Accounts
	if accounts == nil {
		accounts = identity.NewLoggingAccountCreator(nil)
	}
	providers := cfg.Providers
	if providers == nil {
		providers = identity.Providers()
	}
	var exit onboarding.Option
	if variant == onboarding.VariantAccount {
		// The callback only enables the Exit control; Back reports the move.
		exit = onboarding.WithExit(func() {})
	}
	m := Model{
		ctx:       ctx,
		wiz:       onboarding.New(variant, exit),
		delegator: delegator,
		accounts:  accounts,
		providers: providers,
		loc:       message.NewPrinter(MatchLanguage(cfg.Language)),
	}
	m.syncStep()
	return m
}

// MatchLanguage picks the closest catalog locale, defaulting to the base locale.
func MatchLanguage(tag language.Tag) language.Tag {
	supported := catalog.Default().Tags()
	if len(supported) == 0 {
		return language.AmericanEnglish
	}
	_, idx, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Run drives the wizard until the visitor finishes, exits or quits.
func Run(ctx context.Context, cfg Config, opts ...tea.ProgramOption) (Result, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(New(ctx, cfg), opts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("run terminal wizard: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("terminal wizard returned %T", final)
	}
	return model.Result(), nil
}

// Result returns the outcome; Outcome is empty while the wizard is running.
func (m Model) Result() Result {
	return m.result
}

// Done reports whether the wizard has ended.
func (m Model) Done() bool {
	return m.result.Outcome != ""
}

// Step returns the current step.
func (m Model) Step() onboarding.Step {
	return m.wiz.Current()
}

// Data returns the profile collected so far, including uncommitted input.
func (m Model) Data() (onboarding.UserData, error) {
	err := m.commitInputs()
	return m.wiz.Data(), err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.Done() {
			return m, tea.Quit
		}
		if len(m.inputs) > 0 {
			return m.updateForm(msg)
		}
		return m.updateChoices(msg)
	}
	if len(m.inputs) > 0 {
		return m.updateFocused(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, formKeys.Quit):
		return m.end(OutcomeQuit)
	case key.Matches(msg, formKeys.Next):
		return m.next()
	case key.Matches(msg, formKeys.Back):
		return m.back()
	case key.Matches(msg, formKeys.Down):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, formKeys.Up):
		return m, m.setFocus(m.focus - 1)
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateChoices(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.end(OutcomeQuit)
	case key.Matches(msg, keys.Next):
		return m.next()
	case key.Matches(msg, keys.Back):
		return m.back()
	case key.Matches(msg, keys.Toggle):
		m.toggle()
	case key.Matches(msg, keys.Down):
		if m.cursor < m.choiceCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	}
	return m, nil
}

func (m Model) next() (tea.Model, tea.Cmd) {
	m.err = nil
	if err := m.commitInputs(); err != nil {
		m.err = err
		return m, nil
	}
	if m.wiz.Current() == onboarding.StepAccount {
		return m.account()
	}
	if m.wiz.IsLast() {
		return m.end(OutcomeFinished)
	}
	m.wiz.Next()
	return m, m.syncStep()
}

func (m Model) back() (tea.Model, tea.Cmd) {
	m.err = nil
	if m.emailForm {
		m.emailForm = false
		return m, m.syncStep()
	}
	if err := m.commitInputs(); err != nil {
		m.err = err
		return m, nil
	}
	if m.wiz.Back() == onboarding.MoveExit {
		return m.end(OutcomeExited)
	}
	return m, m.syncStep()
}

func (m *Model) toggle() {
	m.err = nil
	switch m.wiz.Current() {
	case onboarding.StepGoals:
		goals := onboarding.Goals()
		m.err = m.wiz.ToggleGoal(string(goals[m.cursor]))
	case onboarding.StepExperience:
		levels := onboarding.ExperienceLevels()
		m.err = m.wiz.SelectExperience(string(levels[m.cursor]))
	}
}

// account runs the choice under the cursor on the account step: a provider
// delegates sign-in, the last option opens the email form, and submitting
// the form requests an account.
func (m Model) account() (tea.Model, tea.Cmd) {
	if m.emailForm {
		email := m.inputs[0].Value()
		creds := identity.Credentials{Email: email, Password: m.inputs[1].Value()}
		if err := m.accounts.CreateAccount(m.ctx, creds); err != nil {
			m.err = err
			return m, nil
		}
		m.result.AccountEmail = email
		return m.end(OutcomeAccount)
	}
	if m.cursor < len(m.providers) {
		location, err := m.delegator.SignIn(m.ctx, m.providers[m.cursor], identity.SignInOptions{CallbackURL: identity.DefaultCallbackURL})
		if err != nil {
			m.err = err
			return m, nil
		}
		m.result.SignInURL = location
		return m.end(OutcomeSignIn)
	}
	m.emailForm = true
	return m, m.syncStep()
}

// end stops the program. next and back commit before calling it, so only a
// quit can reach here with input that does not commit.
func (m Model) end(outcome Outcome) (tea.Model, tea.Cmd) {
	if err := m.commitInputs(); err != nil {
		log.Printf("onboard: uncommitted input dropped outcome=%s err=%v", outcome, err)
	}
	m.result.Outcome = outcome
	m.result.Data = m.wiz.Data()
	m.result.Recommendation = m.wiz.Recommendation()
	return m, tea.Quit
}

func (m Model) choiceCount() int {
	switch m.wiz.Current() {
	case onboarding.StepGoals:
		return len(onboarding.Goals())
	case onboarding.StepExperience:
		return len(onboarding.ExperienceLevels())
	case onboarding.StepAccount:
		return len(m.providers) + 1
	}
	return 0
}

// syncStep rebuilds the text inputs for the current step.
func (m *Model) syncStep() tea.Cmd {
	data := m.wiz.Data()
	m.inputs, m.fields = nil, nil
	m.focus, m.cursor = 0, 0
	switch m.wiz.Current() {
	case onboarding.StepWelcome:
		m.addInput(onboarding.FieldAge, data.Age, "onboarding.welcome.age_placeholder", 3)
	case onboarding.StepDetails:
		m.addInput(onboarding.FieldName, data.Name, "onboarding.details.name_placeholder", 80)
		m.addInput(onboarding.FieldEmail, data.Email, "onboarding.details.email_placeholder", 254)
	case onboarding.StepAccount:
		if m.emailForm {
			m.addInput(fieldAccountEmail, data.Email, "onboarding.account.email_placeholder", 254)
			m.addInput(fieldAccountPassword, "", "onboarding.account.password_placeholder", 128)
			m.inputs[1].EchoMode = textinput.EchoPassword
		}
	}
	if len(m.inputs) == 0 {
		return nil
	}
	return m.setFocus(0)
}

func (m *Model) addInput(field string, value string, placeholderKey string, limit int) {
	ti := textinput.New()
	ti.Placeholder = m.loc.Sprintf(placeholderKey)
	ti.CharLimit = limit
	ti.Width = 40
	ti.SetValue(value)
	m.inputs = append(m.inputs, ti)
	m.fields = append(m.fields, field)
}

func (m *Model) setFocus(idx int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	idx = (idx + len(m.inputs)) % len(m.inputs)
	m.focus = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == idx {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

// commitInputs copies wizard-field inputs into the wizard.
func (m Model) commitInputs() error {
	for i, field := range m.fields {
		if field == fieldAccountEmail || field == fieldAccountPassword {
			continue
		}
		if err := m.wiz.SetField(field, m.inputs[i].Value()); err != nil {
			return err
		}
	}
	return nil
}

// errorText localizes domain errors and falls back to the raw message.
func (m Model) errorText(err error) string {
	if code := apperrors.GetCode(err); code != apperrors.CodeUnknown {
		key := code.LocalizationKey()
		if text := m.loc.Sprintf(key); text != key {
			return text
		}
	}
	return err.Error()
}
