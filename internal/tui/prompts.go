package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/sahilm/fuzzy"
)

// ErrInteractiveDisabled is returned when prompts cannot be shown (no TTY or BRANCHKIT_NON_INTERACTIVE is set)
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (not a terminal or BRANCHKIT_NON_INTERACTIVE is set)")

// Validator checks raw text input. A non-nil error rejects the input;
// its message is shown and the prompt repeats.
type Validator func(input string) error

// Prompter presents interactive prompts
type Prompter interface {
	// Select asks for one of choices, starting on defaultIndex
	Select(message string, choices []string, defaultIndex int) (Result[string], error)
	// Input asks for free text. Without a validator an empty answer cancels.
	Input(message string, validate Validator) (Result[string], error)
	// Confirm asks a yes/no question
	Confirm(message string, defaultValue bool) (Result[bool], error)
}

// SurveyPrompter implements Prompter with survey
type SurveyPrompter struct {
	opts        []survey.AskOpt
	interactive func() bool
}

// NewSurveyPrompter creates a prompter bound to the process terminal
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts, interactive: IsInteractive}
}

func (p *SurveyPrompter) checkInteractiveAllowed() error {
	if p.interactive != nil && !p.interactive() {
		return ErrInteractiveDisabled
	}
	return nil
}

// Select implements Prompter
func (p *SurveyPrompter) Select(message string, choices []string, defaultIndex int) (Result[string], error) {
	if err := p.checkInteractiveAllowed(); err != nil {
		return Cancelled[string](), err
	}
	if len(choices) == 0 {
		return Cancelled[string](), fmt.Errorf("no choices for %q", message)
	}

	prompt := &survey.Select{
		Message: message,
		Options: choices,
		Filter:  fuzzyFilter,
	}
	if defaultIndex >= 0 && defaultIndex < len(choices) {
		prompt.Default = choices[defaultIndex]
	}

	var answer string
	if err := survey.AskOne(prompt, &answer, p.opts...); err != nil {
		return cancelledOr[string](err)
	}
	return Selected(answer), nil
}

// Input implements Prompter
func (p *SurveyPrompter) Input(message string, validate Validator) (Result[string], error) {
	if err := p.checkInteractiveAllowed(); err != nil {
		return Cancelled[string](), err
	}

	prompt := &survey.Input{Message: message}
	opts := p.opts
	if validate != nil {
		opts = append(append([]survey.AskOpt(nil), p.opts...), survey.WithValidator(func(ans interface{}) error {
			text, _ := ans.(string)
			return validate(text)
		}))
	}

	var answer string
	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return cancelledOr[string](err)
	}
	if validate == nil && strings.TrimSpace(answer) == "" {
		return Cancelled[string](), nil
	}
	return Selected(answer), nil
}

// Confirm implements Prompter
func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (Result[bool], error) {
	if err := p.checkInteractiveAllowed(); err != nil {
		return Cancelled[bool](), err
	}

	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}

	var answer bool
	if err := survey.AskOne(prompt, &answer, p.opts...); err != nil {
		return cancelledOr[bool](err)
	}
	return Selected(answer), nil
}

// fuzzyFilter keeps options whose characters contain the typed filter in order,
// so "fal" finds feature/alice/login-fix
func fuzzyFilter(filter, value string, _ int) bool {
	if filter == "" {
		return true
	}
	return len(fuzzy.Find(filter, []string{value})) > 0
}

// cancelledOr maps a survey interrupt (Ctrl+C) or end of input (Ctrl+D) to Cancelled
// and passes other errors through
func cancelledOr[T any](err error) (Result[T], error) {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return Cancelled[T](), nil
	}
	return Cancelled[T](), err
}
