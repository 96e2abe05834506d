package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExternalCommandError(t *testing.T) {
	err := NewExternalCommandError("git", []string{"checkout", "-b", "x"}, "", "fatal: a branch named 'x' already exists\n", nil)
	require.Equal(t, "git checkout -b x failed: fatal: a branch named 'x' already exists", err.Error())
	require.ErrorIs(t, err, ErrExternalCommand)

	killed := NewExternalCommandError("git", []string{"fetch"}, "", "", context.Canceled)
	require.Equal(t, "git fetch failed: context canceled", killed.Error())
	require.ErrorIs(t, killed, context.Canceled)
}

func TestCherryPickError(t *testing.T) {
	cause := NewExternalCommandError("git", []string{"cherry-pick", "abc"}, "", "error: could not apply abc", nil)
	err := fmt.Errorf("hotfix copy: %w", NewCherryPickError("abc", 2, 5, cause))

	var pickErr *CherryPickError
	require.True(t, errors.As(err, &pickErr))
	require.Equal(t, 2, pickErr.Applied)
	require.ErrorIs(t, err, ErrExternalCommand)
	require.Contains(t, err.Error(), "after 2 of 5 commits applied")
}

func TestTypedSentinels(t *testing.T) {
	require.ErrorIs(t, NewValidationError("bad %s", "input"), ErrValidation)
	require.Equal(t, "bad input", NewValidationError("bad %s", "input").Error())

	cfgErr := NewConfigurationError("invalid BRANCHKIT_RECENT_LIMIT", errors.New("not a number"))
	require.ErrorIs(t, cfgErr, ErrConfiguration)
	require.Equal(t, "invalid BRANCHKIT_RECENT_LIMIT: not a number", cfgErr.Error())
	require.NotErrorIs(t, cfgErr, ErrCancelled)
}
