package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	bkerrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/runtime"
	"branchkit.dev/branchkit/internal/tui"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	debug   bool
	logFile string
}

// dispatchFunc runs the selected workflow for a command
type dispatchFunc func(cmd *cobra.Command, workflow Workflow, flags *globalFlags) error

// unknownFlagsAllowed lets external tooling pass flags branchkit does not know
var unknownFlagsAllowed = cobra.FParseErrWhitelist{UnknownFlags: true}

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, runWorkflow)
}

func newRootCmd(version string, dispatch dispatchFunc) *cobra.Command {
	var (
		flags     globalFlags
		selection Selection
	)

	rootCmd := &cobra.Command{
		Use:   "branchkit",
		Short: "Create, clean, revisit and copy git branches named <kind>/<author>/<description>",
		Long: `branchkit wraps the everyday branch chores of a develop/release/master workflow.

Without flags it creates a new branch: pick a kind (feature, bugfix, hotfix),
a base branch and a description, and branchkit checks out
<kind>/<git user.name>/<description> from origin.

  -c, --clean        delete local branches merged into origin/develop
  -r, --recent       check out one of the recently used branches
  -hc, --hotfix_copy copy the current hotfix branch onto a bugfix branch
  -i, --init         create a branch (same as no flag)`,
		Version:            version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: unknownFlagsAllowed,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dispatch(cmd, selection.Workflow(), &flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Print every git command before it runs")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write a rotating debug log to this file")

	f := rootCmd.Flags()
	f.BoolVarP(&selection.Init, "init", "i", false, "Create a new branch (default)")
	f.BoolVarP(&selection.Clean, "clean", "c", false, WorkflowClean.Description())
	f.BoolVarP(&selection.Recent, "recent", "r", false, WorkflowRecent.Description())
	f.BoolVar(&selection.HotfixCopy, "hotfix_copy", false, WorkflowHotfixCopy.Description()+" (also -hc)")
	f.BoolVar(&selection.HotfixCopy, "hc", false, WorkflowHotfixCopy.Description())
	_ = f.MarkHidden("hc")

	for _, w := range Workflows() {
		rootCmd.AddCommand(newWorkflowCmd(w, &flags, dispatch))
	}
	rootCmd.AddCommand(newConfigCmd(&flags))

	return rootCmd
}

// newWorkflowCmd creates the subcommand equivalent of a workflow flag
func newWorkflowCmd(w Workflow, flags *globalFlags, dispatch dispatchFunc) *cobra.Command {
	return &cobra.Command{
		Use:                w.String(),
		Short:              w.Description(),
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: unknownFlagsAllowed,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dispatch(cmd, w, flags)
		},
	}
}

// runWorkflow builds the runtime for the current repository and runs w
func runWorkflow(cmd *cobra.Command, w Workflow, flags *globalFlags) error {
	return Run(cmd, flags, func(ctx *runtime.Context) error {
		ctx.Splog.Debug("workflow: %s", w)
		return w.Run(ctx)
	})
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, flags *globalFlags, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context(), runtime.Options{
		Debug:   flags.debug,
		LogFile: flags.logFile,
	})
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}

// Execute runs branchkit with args and returns the process exit status
func Execute(ctx context.Context, args []string, version string) int {
	return execute(ctx, NewRootCmd(version), args, os.Stderr)
}

func execute(ctx context.Context, rootCmd *cobra.Command, args []string, errOut io.Writer) int {
	rootCmd.SetArgs(NormalizeArgs(args))
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, bkerrors.ErrCancelled) {
		_, _ = fmt.Fprintln(errOut, tui.ColorRed(err.Error()))
	}
	return ExitCode(err)
}

// ExitCode maps a command error to the process exit status.
// Cancellation exits 1 like any other failure, only silently.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
