// Package testhelpers provides testing utilities for branchkit,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ListBranches returns the sorted local branch names of the repository.
func ListBranches(t *testing.T, repo *GitRepo) []string {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("for-each-ref", "refs/heads/", "--format=%(refname:short)")
	require.NoError(t, err, "Failed to list branches")

	branches := splitLines(output)
	sort.Strings(branches)
	return branches
}

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	want := append([]string(nil), expected...)
	sort.Strings(want)
	require.Equal(t, want, ListBranches(t, repo), "Branches do not match")
}

// ExpectCurrentBranch asserts the checked-out branch.
func ExpectCurrentBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	current, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, expected, current)
}
