package actions

import (
	"fmt"

	"branchkit.dev/branchkit/internal/branchname"
	bkerrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/runtime"
	"branchkit.dev/branchkit/internal/tui"
)

// CreateResult describes the branch a create run produced
type CreateResult struct {
	Branch     string
	StartPoint string
}

// CreateAction asks for kind, base and description, then creates and checks out
// <kind>/<author>/<description> from the remote base branch. Declining the
// submodule update ends the run with ErrCancelled after the branch exists.
func CreateAction(ctx *runtime.Context) (*CreateResult, error) {
	cfg := ctx.Config

	author, err := ctx.Git.UserName(ctx.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read git user.name: %w", err)
	}
	if author == "" {
		return nil, bkerrors.NewConfigurationError("git user.name is empty, set it with 'git config user.name <name>'", nil)
	}

	kinds := branchname.Kinds()
	kindChoices := make([]string, len(kinds))
	for i, k := range kinds {
		kindChoices[i] = string(k)
	}
	answer, err := selectOne(ctx.Prompter, "Pick branch", kindChoices, 0)
	if err != nil {
		return nil, err
	}
	kind, err := branchname.ParseKind(answer)
	if err != nil {
		return nil, err
	}

	base := cfg.ProductionBranch
	if kind.ChoosesBase() {
		base, err = selectOne(ctx.Prompter, "Pick base branch", []string{cfg.IntegrationBranch, cfg.ReleaseBranch}, 0)
		if err != nil {
			return nil, err
		}
	}

	description, err := inputText(ctx.Prompter, "Branch name?", branchname.ValidateDescription)
	if err != nil {
		return nil, err
	}

	name, err := branchname.Compose(kind, author, description)
	if err != nil {
		return nil, err
	}
	branch := name.String()
	startPoint := cfg.RemoteRef(base)

	ctx.Splog.Info(tui.ColorCyan(fmt.Sprintf("Create branch: %s, base on: %s", branch, startPoint)))
	if err := ctx.Git.CreateBranchFrom(ctx.Context, branch, startPoint); err != nil {
		return nil, fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	ctx.Splog.Success("Create done")

	result := &CreateResult{Branch: branch, StartPoint: startPoint}
	if err := confirm(ctx.Prompter, "Should update submodules?", false); err != nil {
		return result, err
	}

	if err := ctx.Git.UpdateSubmodules(ctx.Context); err != nil {
		return result, fmt.Errorf("failed to update submodules: %w", err)
	}
	ctx.Splog.Success("Update submodule done")
	return result, nil
}
