package actions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"branchkit.dev/branchkit/internal/actions"
	bkerrors "branchkit.dev/branchkit/internal/errors"
)

func TestRecentAction(t *testing.T) {
	t.Run("offers existing branches once, most recent first", func(t *testing.T) {
		g := &fakeGit{
			reflog: []string{"feature/a", "develop", "feature/a", "gone", "bugfix/b", "develop"},
			existing: map[string]bool{
				"feature/a": true,
				"develop":   true,
				"bugfix/b":  true,
			},
		}
		p := &fakePrompter{selects: []string{"bugfix/b"}}
		ctx, out := newTestContext(t, g, p)

		result, err := actions.RecentAction(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"feature/a", "develop", "bugfix/b"}, result.Candidates)
		require.Equal(t, []string{"feature/a", "develop", "bugfix/b"}, p.choices[0])
		require.Equal(t, "bugfix/b", result.CheckedOut)
		require.Contains(t, g.Calls(), "Checkout bugfix/b")
		require.Contains(t, out.String(), "Recent branch:")
		require.Contains(t, out.String(), "Checkout done")

		// one existence check per distinct name
		require.Len(t, g.CallsWithPrefix("BranchExists"), 4)
	})

	t.Run("passes the configured limit", func(t *testing.T) {
		g := &fakeGit{}
		ctx, _ := newTestContext(t, g, &fakePrompter{})
		ctx.Config.RecentLimit = 5

		_, err := actions.RecentAction(ctx)
		require.NoError(t, err)
		require.Equal(t, "RecentCheckouts 5", g.Calls()[0])
	})

	t.Run("failed existence checks count as missing", func(t *testing.T) {
		g := &fakeGit{
			reflog:     []string{"feature/a", "feature/b"},
			existing:   map[string]bool{"feature/a": true, "feature/b": true},
			existsErrs: map[string]error{"feature/a": errors.New("boom")},
		}
		p := &fakePrompter{selects: []string{""}}
		ctx, _ := newTestContext(t, g, p)

		result, err := actions.RecentAction(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"feature/b"}, result.Candidates)
		require.Equal(t, "feature/b", result.CheckedOut)
	})

	t.Run("no surviving branch is reported without error", func(t *testing.T) {
		g := &fakeGit{reflog: []string{"gone", "also-gone"}}
		p := &fakePrompter{}
		ctx, out := newTestContext(t, g, p)

		result, err := actions.RecentAction(ctx)
		require.NoError(t, err)
		require.Empty(t, result.Candidates)
		require.Empty(t, p.asked)
		require.Empty(t, g.CallsWithPrefix("Checkout"))
		require.Contains(t, out.String(), "No recent branch")
	})

	t.Run("cancelling the pick does not check out", func(t *testing.T) {
		g := &fakeGit{reflog: []string{"feature/a"}, existing: map[string]bool{"feature/a": true}}
		p := &fakePrompter{selects: []string{cancel}}
		ctx, _ := newTestContext(t, g, p)

		_, err := actions.RecentAction(ctx)
		require.ErrorIs(t, err, bkerrors.ErrCancelled)
		require.Empty(t, g.CallsWithPrefix("Checkout"))
	})

	t.Run("reflog failure is returned", func(t *testing.T) {
		g := &fakeGit{errs: map[string]error{"RecentCheckouts": gitFailure("fatal: your current branch 'master' does not have any commits yet", "reflog")}}
		ctx, _ := newTestContext(t, g, &fakePrompter{})

		_, err := actions.RecentAction(ctx)
		require.ErrorIs(t, err, bkerrors.ErrExternalCommand)
	})

	t.Run("cancelled context is reported instead of an empty list", func(t *testing.T) {
		g := &fakeGit{reflog: []string{"feature/a"}, existing: map[string]bool{"feature/a": true}}
		ctx, _ := newTestContext(t, g, &fakePrompter{})
		cancelled, cancelFn := context.WithCancel(context.Background())
		cancelFn()
		ctx.Context = cancelled

		_, err := actions.RecentAction(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("many candidates keep their order", func(t *testing.T) {
		names := []string{"b1", "b2", "b3", "b4", "b5", "b6", "b7", "b8", "b9", "b10"}
		existing := map[string]bool{}
		for i, n := range names {
			existing[n] = i%3 != 0
		}
		g := &fakeGit{reflog: names, existing: existing}
		p := &fakePrompter{selects: []string{""}}
		ctx, _ := newTestContext(t, g, p)

		result, err := actions.RecentAction(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"b2", "b3", "b5", "b6", "b8", "b9"}, result.Candidates)
	})
}
