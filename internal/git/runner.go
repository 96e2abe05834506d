package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	bkerrors "branchkit.dev/branchkit/internal/errors"
)

// Result holds the captured output of a finished git process
type Result struct {
	Stdout string
	Stderr string
}

// CommandObserver is called before every git invocation
type CommandObserver func(name string, args []string)

// CommandRunner handles execution of git commands.
// Any output on stderr is treated as failure, independent of the exit code.
type CommandRunner struct {
	binary     string
	workingDir string
	env        []string
	observer   CommandObserver
}

// NewCommandRunner creates a new CommandRunner rooted at workingDir.
// An empty workingDir runs git in the process working directory.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{binary: "git", workingDir: workingDir}
}

// SetObserver registers a callback invoked before each command
func (r *CommandRunner) SetObserver(observer CommandObserver) {
	r.observer = observer
}

// SetEnv sets extra environment variables (KEY=VALUE) for every command
func (r *CommandRunner) SetEnv(env ...string) {
	r.env = env
}

// WorkingDir returns the directory git is run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Exec runs git with the given arguments and returns both output streams.
// There is no timeout: cancellation comes only from ctx.
func (r *CommandRunner) Exec(ctx context.Context, args ...string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if r.observer != nil {
		r.observer(r.binary, args)
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return res, bkerrors.NewExternalCommandError(r.binary, args, res.Stdout, res.Stderr, err)
	}
	if strings.TrimSpace(res.Stderr) != "" {
		return res, bkerrors.NewExternalCommandError(r.binary, args, res.Stdout, res.Stderr, nil)
	}
	return res, nil
}

// Run executes a git command and returns its trimmed stdout
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	res, err := r.Exec(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

// Runner defines the git operations the workflows depend on.
// Every method maps to exactly one git invocation; output parsing lives in parse.go.
type Runner interface {
	// Identity and repository state
	UserName(ctx context.Context) (string, error)
	CurrentBranch(ctx context.Context) (string, error)

	// Branch management
	FetchPrune(ctx context.Context, remote string) error
	MergedBranches(ctx context.Context, into string) ([]string, error)
	DeleteBranches(ctx context.Context, names []string) (string, error)
	CreateBranchFrom(ctx context.Context, name, startPoint string) error
	Checkout(ctx context.Context, name string) error
	BranchExists(ctx context.Context, name string) (bool, error)
	RecentCheckouts(ctx context.Context, limit int) ([]string, error)

	// Commits
	CommitRange(ctx context.Context, exclude, include string) ([]string, error)
	CherryPick(ctx context.Context, commit string) (string, error)

	// Submodules
	UpdateSubmodules(ctx context.Context) error
}

// NewRunner returns the Runner backed by the git binary
func NewRunner(cmd *CommandRunner) Runner {
	return &realRunner{cmd: cmd}
}

type realRunner struct {
	cmd *CommandRunner
}

func (r *realRunner) UserName(ctx context.Context) (string, error) {
	out, err := r.cmd.Exec(ctx, "config", "user.name")
	if err != nil {
		// git config exits 1 without stderr when the key is unset
		var cmdErr *bkerrors.ExternalCommandError
		if errors.As(err, &cmdErr) && strings.TrimSpace(cmdErr.Stderr) == "" {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}

func (r *realRunner) CurrentBranch(ctx context.Context) (string, error) {
	return r.cmd.Run(ctx, "branch", "--show-current")
}

func (r *realRunner) FetchPrune(ctx context.Context, remote string) error {
	_, err := r.cmd.Run(ctx, "fetch", "--prune", "--quiet", remote)
	return err
}

func (r *realRunner) MergedBranches(ctx context.Context, into string) ([]string, error) {
	out, err := r.cmd.Run(ctx, "branch", "--merged="+into)
	if err != nil {
		return nil, err
	}
	return ParseBranchList(out), nil
}

func (r *realRunner) DeleteBranches(ctx context.Context, names []string) (string, error) {
	args := append([]string{"branch", "-d"}, names...)
	return r.cmd.Run(ctx, args...)
}

func (r *realRunner) CreateBranchFrom(ctx context.Context, name, startPoint string) error {
	_, err := r.cmd.Run(ctx, "checkout", "--quiet", "--no-track", "-b", name, startPoint)
	return err
}

func (r *realRunner) Checkout(ctx context.Context, name string) error {
	_, err := r.cmd.Run(ctx, "checkout", "--quiet", name)
	return err
}

func (r *realRunner) BranchExists(ctx context.Context, name string) (bool, error) {
	out, err := r.cmd.Run(ctx, "branch", "--list", name)
	if err != nil {
		return false, err
	}
	return len(ParseBranchList(out)) > 0, nil
}

func (r *realRunner) RecentCheckouts(ctx context.Context, limit int) ([]string, error) {
	out, err := r.cmd.Run(ctx, "reflog", "--format=%gs")
	if err != nil {
		return nil, err
	}
	return ParseReflogCheckouts(out, limit), nil
}

func (r *realRunner) CommitRange(ctx context.Context, exclude, include string) ([]string, error) {
	out, err := r.cmd.Run(ctx, "log", exclude+".."+include, "--pretty=format:%H")
	if err != nil {
		return nil, err
	}
	return ParseCommitList(out), nil
}

func (r *realRunner) CherryPick(ctx context.Context, commit string) (string, error) {
	return r.cmd.Run(ctx, "cherry-pick", commit)
}

func (r *realRunner) UpdateSubmodules(ctx context.Context) error {
	_, err := r.cmd.Run(ctx, "submodule", "update", "--quiet")
	return err
}
