package actions

import (
	"fmt"
	"strings"

	"branchkit.dev/branchkit/internal/branchname"
	"branchkit.dev/branchkit/internal/runtime"
	"branchkit.dev/branchkit/internal/tui"
)

// CleanResult lists what a clean run deleted
type CleanResult struct {
	Deleted []string
	// Output is git's report for the batch delete
	Output string
}

// CleanAction prunes remote-tracking refs and deletes local branches already
// merged into the remote integration branch. Branch names containing a
// protected name are never deleted. Deletion is git's safe delete (-d).
func CleanAction(ctx *runtime.Context) (*CleanResult, error) {
	cfg := ctx.Config

	if err := ctx.Git.FetchPrune(ctx.Context, cfg.Remote); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", cfg.Remote, err)
	}

	into := cfg.RemoteRef(cfg.IntegrationBranch)
	merged, err := ctx.Git.MergedBranches(ctx.Context, into)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches merged into %s: %w", into, err)
	}

	candidates := branchname.Dedupe(branchname.WithoutProtected(merged, cfg.ProtectedBranches))
	if len(candidates) == 0 {
		ctx.Splog.Info("No merged branches to clean")
		return &CleanResult{}, nil
	}

	ctx.Splog.Info(tui.ColorCyan("The following branches will be deleted:"))
	for _, b := range candidates {
		ctx.Splog.Info("  %s", tui.ColorBranchName(b, false))
	}

	out, err := ctx.Git.DeleteBranches(ctx.Context, candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to delete branches %s: %w", strings.Join(candidates, " "), err)
	}
	ctx.Splog.Success("Delete completed!")
	if out != "" {
		ctx.Splog.Info("%s", out)
	}

	return &CleanResult{Deleted: candidates, Output: out}, nil
}
