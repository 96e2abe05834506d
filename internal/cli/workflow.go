package cli

import (
	"branchkit.dev/branchkit/internal/actions"
	"branchkit.dev/branchkit/internal/runtime"
)

// Workflow identifies one of the branchkit workflows
type Workflow int

const (
	// WorkflowCreate creates a <kind>/<author>/<description> branch
	WorkflowCreate Workflow = iota
	// WorkflowClean deletes merged branches
	WorkflowClean
	// WorkflowRecent checks out a recently used branch
	WorkflowRecent
	// WorkflowHotfixCopy copies a hotfix branch onto a bugfix branch
	WorkflowHotfixCopy
)

// Workflows returns every workflow in help order
func Workflows() []Workflow {
	return []Workflow{WorkflowCreate, WorkflowClean, WorkflowRecent, WorkflowHotfixCopy}
}

// String returns the subcommand name of the workflow
func (w Workflow) String() string {
	switch w {
	case WorkflowCreate:
		return "create"
	case WorkflowClean:
		return "clean"
	case WorkflowRecent:
		return "recent"
	case WorkflowHotfixCopy:
		return "hotfix-copy"
	default:
		return "unknown"
	}
}

// Description is the one-line help text of the workflow
func (w Workflow) Description() string {
	switch w {
	case WorkflowCreate:
		return "Create a <kind>/<author>/<description> branch from origin"
	case WorkflowClean:
		return "Delete local branches merged into origin/develop"
	case WorkflowRecent:
		return "Check out a recently used branch"
	case WorkflowHotfixCopy:
		return "Copy the current hotfix branch onto a bugfix branch from origin/release"
	default:
		return ""
	}
}

// Run executes the workflow
func (w Workflow) Run(ctx *runtime.Context) error {
	var err error
	switch w {
	case WorkflowClean:
		_, err = actions.CleanAction(ctx)
	case WorkflowRecent:
		_, err = actions.RecentAction(ctx)
	case WorkflowHotfixCopy:
		_, err = actions.HotfixCopyAction(ctx)
	default:
		_, err = actions.CreateAction(ctx)
	}
	return err
}

// Selection holds the workflow flags of the root command
type Selection struct {
	Init       bool
	Clean      bool
	Recent     bool
	HotfixCopy bool
}

// Workflow picks the workflow to run. When several flags are set the first in
// the order init, clean, recent, hotfix_copy wins; no flag means create.
func (s Selection) Workflow() Workflow {
	switch {
	case s.Init:
		return WorkflowCreate
	case s.Clean:
		return WorkflowClean
	case s.Recent:
		return WorkflowRecent
	case s.HotfixCopy:
		return WorkflowHotfixCopy
	default:
		return WorkflowCreate
	}
}
