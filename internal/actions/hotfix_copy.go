package actions

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"branchkit.dev/branchkit/internal/branchname"
	bkerrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/runtime"
	"branchkit.dev/branchkit/internal/tui"
)

// HotfixCopyResult describes a finished hotfix copy
type HotfixCopyResult struct {
	Source string
	Target string
	// Commits are the replayed commits, oldest first
	Commits []string
}

// HotfixCopyAction copies the commits of the current hotfix/<author>/<description>
// branch onto a new bugfix/<author>/<description> branch started from the remote
// release branch.
//
// The new branch is created while the commit range is listed; the listing is
// read-only and addressed by branch name, so it does not depend on HEAD.
// Cherry-picks start only after the checkout has completed. A failing
// cherry-pick stops the replay and leaves the repository as git left it.
func HotfixCopyAction(ctx *runtime.Context) (*HotfixCopyResult, error) {
	cfg := ctx.Config

	current, err := ctx.Git.CurrentBranch(ctx.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read current branch: %w", err)
	}
	hotfix, err := branchname.ParseHotfix(current)
	if err != nil {
		return nil, err
	}

	target := hotfix.BugfixCopy().String()
	startPoint := cfg.RemoteRef(cfg.ReleaseBranch)
	exclude := cfg.RemoteRef(cfg.ProductionBranch)

	ctx.Splog.Info(tui.ColorCyan(fmt.Sprintf("Copy %s to %s, base on: %s", current, target, startPoint)))

	var commits []string
	g := new(errgroup.Group)
	g.Go(func() error {
		if err := ctx.Git.CreateBranchFrom(ctx.Context, target, startPoint); err != nil {
			return fmt.Errorf("failed to create branch %s: %w", target, err)
		}
		return nil
	})
	g.Go(func() error {
		listed, err := ctx.Git.CommitRange(ctx.Context, exclude, current)
		if err != nil {
			return fmt.Errorf("failed to list commits of %s: %w", current, err)
		}
		commits = listed
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// git log lists newest first
	slices.Reverse(commits)

	ctx.Splog.Success("Created a new branch based on %s, now cherry-picking from %s", startPoint, current)
	for i, commit := range commits {
		ctx.Splog.Info("Cherry-picking commit %s...", tui.ColorDim(commit))
		if _, err := ctx.Git.CherryPick(ctx.Context, commit); err != nil {
			return nil, bkerrors.NewCherryPickError(commit, i, len(commits), err)
		}
	}
	ctx.Splog.Success("Cherry-pick done")
	ctx.Splog.Success("Now you can push this branch to remote!")

	return &HotfixCopyResult{Source: current, Target: target, Commits: commits}, nil
}
