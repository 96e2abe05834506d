package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBranchList(t *testing.T) {
	t.Parallel()

	output := `  bugfix/bob/null-pointer
* develop
+ feature/alice/worktree
  (HEAD detached at 1a2b3c4)
  feature/alice/login-fix

`
	require.Equal(t, []string{
		"bugfix/bob/null-pointer",
		"develop",
		"feature/alice/worktree",
		"feature/alice/login-fix",
	}, ParseBranchList(output))

	require.Empty(t, ParseBranchList(""))
}

func TestParseReflogCheckouts(t *testing.T) {
	t.Parallel()

	const defaultFormat = `9fceb02 HEAD@{0}: checkout: moving from develop to feature/alice/login-fix
9fceb02 HEAD@{1}: commit: add login
1a410ef HEAD@{2}: checkout: moving from feature/alice/login-fix to develop
1a410ef HEAD@{3}: checkout: moving from master to feature/alice/login-fix
e83c516 HEAD@{4}: pull: Fast-forward
e83c516 HEAD@{5}: checkout: moving from develop to master`

	t.Run("extracts targets newest first", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{
			"feature/alice/login-fix",
			"develop",
			"feature/alice/login-fix",
			"master",
		}, ParseReflogCheckouts(defaultFormat, 10))
	})

	t.Run("caps to the first checkout entries", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"feature/alice/login-fix", "develop"}, ParseReflogCheckouts(defaultFormat, 2))
	})

	t.Run("accepts subject-only format", func(t *testing.T) {
		t.Parallel()
		output := "checkout: moving from master to develop\ncommit: x\ncheckout: moving from develop to master"
		require.Equal(t, []string{"develop", "master"}, ParseReflogCheckouts(output, 0))
	})

	t.Run("strips characters outside branch names", func(t *testing.T) {
		t.Parallel()
		output := "checkout: moving from develop to 'feature/odd~name'\ncheckout: moving from a to 1a2b3c4d"
		require.Equal(t, []string{"feature/oddname", "1a2b3c4d"}, ParseReflogCheckouts(output, 10))
	})

	t.Run("ignores other reflog entries", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, ParseReflogCheckouts("commit: x\nreset: moving to HEAD~1", 10))
	})
}

func TestParseCommitList(t *testing.T) {
	t.Parallel()

	output := "\"c3\"\nc2\n  c1  \n\n"
	require.Equal(t, []string{"c3", "c2", "c1"}, ParseCommitList(output))
	require.Empty(t, ParseCommitList(""))
}
