package actions

import (
	"fmt"

	bkerrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/tui"
)

// unwrapPrompt turns a prompt outcome into a value, mapping cancellation to ErrCancelled
func unwrapPrompt[T any](res tui.Result[T], err error) (T, error) {
	var zero T
	if err != nil {
		return zero, fmt.Errorf("prompt failed: %w", err)
	}
	value, ok := res.Value()
	if !ok {
		return zero, bkerrors.ErrCancelled
	}
	return value, nil
}

func selectOne(p tui.Prompter, message string, choices []string, defaultIndex int) (string, error) {
	res, err := p.Select(message, choices, defaultIndex)
	return unwrapPrompt(res, err)
}

func inputText(p tui.Prompter, message string, validate tui.Validator) (string, error) {
	res, err := p.Input(message, validate)
	return unwrapPrompt(res, err)
}

// confirm returns ErrCancelled when the user declines as well as when they interrupt
func confirm(p tui.Prompter, message string, defaultValue bool) error {
	res, err := p.Confirm(message, defaultValue)
	ok, err := unwrapPrompt(res, err)
	if err != nil {
		return err
	}
	if !ok {
		return bkerrors.ErrCancelled
	}
	return nil
}
