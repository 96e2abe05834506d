// Package errors provides sentinel errors and custom error types for the branchkit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrCancelled indicates that the user cancelled or declined a prompt.
	// It is a normal abort path: the CLI exits 1 without printing anything.
	ErrCancelled = errors.New("cancelled")

	// ErrExternalCommand indicates that the git binary reported a failure
	ErrExternalCommand = errors.New("external command failed")

	// ErrValidation indicates that user input or repository state failed a precondition
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration indicates a misconfigured environment
	ErrConfiguration = errors.New("configuration error")

	// ErrNotARepository indicates the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")
)

// ExternalCommandError represents a failed invocation of an external binary.
// Any output on standard error counts as failure, whatever the exit status.
type ExternalCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *ExternalCommandError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Command, strings.Join(e.Args, " "))
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += fmt.Sprintf(": %s", stderr)
	} else if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ExternalCommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrExternalCommand
func (e *ExternalCommandError) Is(target error) bool {
	return target == ErrExternalCommand
}

// NewExternalCommandError creates a new ExternalCommandError
func NewExternalCommandError(command string, args []string, stdout, stderr string, err error) *ExternalCommandError {
	return &ExternalCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ValidationError represents rejected input or an unmet precondition
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is returns true if the target error is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new ValidationError
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConfigurationError represents a fatal environment or config file problem
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string, err error) *ConfigurationError {
	return &ConfigurationError{Message: message, Err: err}
}

// CherryPickError represents a cherry-pick that stopped the replay of a commit range.
// The repository is left as git left it; nothing is aborted or rolled back.
type CherryPickError struct {
	Commit  string
	Applied int
	Total   int
	Err     error
}

func (e *CherryPickError) Error() string {
	return fmt.Sprintf("cherry-pick of %s failed after %d of %d commits applied: %v", e.Commit, e.Applied, e.Total, e.Err)
}

func (e *CherryPickError) Unwrap() error {
	return e.Err
}

// NewCherryPickError creates a new CherryPickError
func NewCherryPickError(commit string, applied, total int, err error) *CherryPickError {
	return &CherryPickError{
		Commit:  commit,
		Applied: applied,
		Total:   total,
		Err:     err,
	}
}
