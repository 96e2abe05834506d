// Package runtime provides a context type that holds the git adapter, prompter,
// logger and configuration for use throughout the application.
package runtime

import (
	"context"
	"fmt"
	"os"
	"strings"

	"branchkit.dev/branchkit/internal/config"
	"branchkit.dev/branchkit/internal/git"
	"branchkit.dev/branchkit/internal/tui"
)

// Context provides access to git, prompts and output for workflows
type Context struct {
	// Context is cancelled on SIGINT/SIGTERM and bounds every git invocation
	Context  context.Context
	Git      git.Runner
	Prompter tui.Prompter
	Splog    *tui.Splog
	Config   *config.Config
	RepoRoot string
	// GitDir holds the per-repository config file
	GitDir   string
}

// NewContext creates a context from explicit collaborators.
// A nil config falls back to the built-in defaults.
func NewContext(runner git.Runner, prompter tui.Prompter, splog *tui.Splog, cfg *config.Config) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Context{
		Context:  context.Background(),
		Git:      runner,
		Prompter: prompter,
		Splog:    splog,
		Config:   cfg,
	}
}

// Options control how GetContext builds the runtime
type Options struct {
	// WorkDir is where repository discovery starts; defaults to the process working directory
	WorkDir string
	// Debug echoes every git invocation
	Debug bool
	// LogFile overrides the configured log file
	LogFile string
}

// GetContext discovers the repository, loads configuration and wires the real
// git runner and survey prompter. The caller must Close the returned context.
func GetContext(parent context.Context, opts Options) (*Context, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		workDir = wd
	}

	repo, err := git.OpenRepository(workDir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(repo.GitDir())
	if err != nil {
		return nil, err
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}

	splog, err := tui.NewSplogWithConfig(tui.SplogOptions{
		Debug:   opts.Debug || os.Getenv("DEBUG") != "",
		LogFile: cfg.LogFile,
	})
	if err != nil {
		return nil, err
	}

	cmdRunner := git.NewCommandRunner(repo.Root())
	cmdRunner.SetObserver(func(name string, args []string) {
		splog.Debug("$ %s %s", name, strings.Join(args, " "))
	})

	if !repo.HasRemote(cfg.Remote) {
		splog.Warn("Remote %q is not configured; workflows that start from %s will fail.", cfg.Remote, cfg.RemoteRef("<branch>"))
	}

	ctx := NewContext(git.NewRunner(cmdRunner), tui.NewSurveyPrompter(), splog, cfg)
	ctx.RepoRoot = repo.Root()
	ctx.GitDir = repo.GitDir()
	if parent != nil {
		ctx.Context = parent
	}
	return ctx, nil
}

// Close releases the log file, if any
func (c *Context) Close() error {
	if c.Splog != nil {
		return c.Splog.Close()
	}
	return nil
}
