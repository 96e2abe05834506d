package actions

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"branchkit.dev/branchkit/internal/branchname"
	"branchkit.dev/branchkit/internal/git"
	"branchkit.dev/branchkit/internal/runtime"
	"branchkit.dev/branchkit/internal/tui"
)

// maxConcurrentChecks bounds the git processes spawned for existence checks
const maxConcurrentChecks = 4

// RecentResult describes the outcome of a recent run
type RecentResult struct {
	// Candidates are the recent branches that still exist, most recent first
	Candidates []string
	// CheckedOut is empty when there was nothing to offer
	CheckedOut string
}

// RecentAction offers the most recently checked-out branches that still exist
// and checks out the one the user picks
func RecentAction(ctx *runtime.Context) (*RecentResult, error) {
	ctx.Splog.Info(tui.ColorCyan("Recent branch:"))

	targets, err := ctx.Git.RecentCheckouts(ctx.Context, ctx.Config.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to read reflog: %w", err)
	}

	candidates, err := existingBranches(ctx.Context, ctx.Git, branchname.Dedupe(targets))
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		ctx.Splog.Info(tui.ColorRed("No recent branch"))
		return &RecentResult{}, nil
	}

	branch, err := selectOne(ctx.Prompter, "Pick branch", candidates, 0)
	if err != nil {
		return nil, err
	}

	if err := ctx.Git.Checkout(ctx.Context, branch); err != nil {
		return nil, fmt.Errorf("failed to checkout %s: %w", branch, err)
	}
	ctx.Splog.Success("Checkout done")

	return &RecentResult{Candidates: candidates, CheckedOut: branch}, nil
}

// existingBranches checks every candidate concurrently and keeps the ones that
// exist, in their original order. A failed check counts as "does not exist";
// only cancellation of ctx is reported.
func existingBranches(ctx context.Context, runner git.Runner, candidates []string) ([]string, error) {
	exists := make([]bool, len(candidates))

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentChecks)
	for i, name := range candidates {
		g.Go(func() error {
			ok, err := runner.BranchExists(ctx, name)
			exists[i] = err == nil && ok
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]string, 0, len(candidates))
	for i, name := range candidates {
		if exists[i] {
			result = append(result, name)
		}
	}
	return result, nil
}
