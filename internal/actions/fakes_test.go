package actions_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"branchkit.dev/branchkit/internal/config"
	bkerrors "branchkit.dev/branchkit/internal/errors"
	"branchkit.dev/branchkit/internal/runtime"
	"branchkit.dev/branchkit/internal/tui"
)

// fakeGit is a recording git.Runner with scripted results
type fakeGit struct {
	mu    sync.Mutex
	calls []string

	userName      string
	currentBranch string
	merged        []string
	deleteOutput  string
	reflog        []string
	existing      map[string]bool
	commits       []string

	// errs fails a method by name, e.g. "CreateBranchFrom"
	errs map[string]error
	// cherryPickErrs fails the cherry-pick of one commit
	cherryPickErrs map[string]error
	// existsErrs fails the existence check of one branch
	existsErrs map[string]error
	// createDelay slows down CreateBranchFrom to expose ordering bugs
	createDelay time.Duration
}

func (f *fakeGit) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGit) err(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs[method]
}

// Calls returns the recorded invocations in order
func (f *fakeGit) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// CallsWithPrefix returns the recorded invocations starting with prefix
func (f *fakeGit) CallsWithPrefix(prefix string) []string {
	var result []string
	for _, c := range f.Calls() {
		if strings.HasPrefix(c, prefix) {
			result = append(result, c)
		}
	}
	return result
}

func (f *fakeGit) UserName(_ context.Context) (string, error) {
	f.record("UserName")
	return f.userName, f.err("UserName")
}

func (f *fakeGit) CurrentBranch(_ context.Context) (string, error) {
	f.record("CurrentBranch")
	return f.currentBranch, f.err("CurrentBranch")
}

func (f *fakeGit) FetchPrune(_ context.Context, remote string) error {
	f.record("FetchPrune %s", remote)
	return f.err("FetchPrune")
}

func (f *fakeGit) MergedBranches(_ context.Context, into string) ([]string, error) {
	f.record("MergedBranches %s", into)
	return f.merged, f.err("MergedBranches")
}

func (f *fakeGit) DeleteBranches(_ context.Context, names []string) (string, error) {
	f.record("DeleteBranches %s", strings.Join(names, " "))
	if err := f.err("DeleteBranches"); err != nil {
		return "", err
	}
	// deleted branches are no longer merged candidates
	f.mu.Lock()
	remaining := f.merged[:0:0]
	for _, m := range f.merged {
		deleted := false
		for _, n := range names {
			if m == n {
				deleted = true
			}
		}
		if !deleted {
			remaining = append(remaining, m)
		}
	}
	f.merged = remaining
	f.mu.Unlock()
	return f.deleteOutput, nil
}

func (f *fakeGit) CreateBranchFrom(_ context.Context, name, startPoint string) error {
	if f.createDelay > 0 {
		time.Sleep(f.createDelay)
	}
	f.record("CreateBranchFrom %s %s", name, startPoint)
	return f.err("CreateBranchFrom")
}

func (f *fakeGit) Checkout(_ context.Context, name string) error {
	f.record("Checkout %s", name)
	return f.err("Checkout")
}

func (f *fakeGit) BranchExists(_ context.Context, name string) (bool, error) {
	f.record("BranchExists %s", name)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.existsErrs[name]; err != nil {
		return false, err
	}
	return f.existing[name], nil
}

func (f *fakeGit) RecentCheckouts(_ context.Context, limit int) ([]string, error) {
	f.record("RecentCheckouts %d", limit)
	return f.reflog, f.err("RecentCheckouts")
}

func (f *fakeGit) CommitRange(_ context.Context, exclude, include string) ([]string, error) {
	f.record("CommitRange %s..%s", exclude, include)
	return append([]string(nil), f.commits...), f.err("CommitRange")
}

func (f *fakeGit) CherryPick(_ context.Context, commit string) (string, error) {
	f.record("CherryPick %s", commit)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.cherryPickErrs[commit]; err != nil {
		return "", err
	}
	return "", nil
}

func (f *fakeGit) UpdateSubmodules(_ context.Context) error {
	f.record("UpdateSubmodules")
	return f.err("UpdateSubmodules")
}

// cancel is a scripted answer that cancels the prompt
const cancel = "\x00cancel"

// fakePrompter answers prompts from scripts, in order
type fakePrompter struct {
	selects  []string
	inputs   []string
	confirms []string

	// asked records prompt messages in order
	asked []string
	// choices records the options of each Select
	choices [][]string
	// rejections records validator messages for rejected inputs
	rejections []string
}

func (p *fakePrompter) Select(message string, choices []string, defaultIndex int) (tui.Result[string], error) {
	p.asked = append(p.asked, message)
	p.choices = append(p.choices, choices)
	if len(p.selects) == 0 {
		return tui.Cancelled[string](), nil
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	if answer == cancel {
		return tui.Cancelled[string](), nil
	}
	if answer == "" && defaultIndex >= 0 && defaultIndex < len(choices) {
		answer = choices[defaultIndex]
	}
	return tui.Selected(answer), nil
}

func (p *fakePrompter) Input(message string, validate tui.Validator) (tui.Result[string], error) {
	p.asked = append(p.asked, message)
	for len(p.inputs) > 0 {
		answer := p.inputs[0]
		p.inputs = p.inputs[1:]
		if answer == cancel {
			return tui.Cancelled[string](), nil
		}
		if validate != nil {
			if err := validate(answer); err != nil {
				p.rejections = append(p.rejections, err.Error())
				continue
			}
		} else if strings.TrimSpace(answer) == "" {
			return tui.Cancelled[string](), nil
		}
		return tui.Selected(answer), nil
	}
	return tui.Cancelled[string](), nil
}

func (p *fakePrompter) Confirm(message string, _ bool) (tui.Result[bool], error) {
	p.asked = append(p.asked, message)
	if len(p.confirms) == 0 {
		return tui.Cancelled[bool](), nil
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	switch answer {
	case cancel:
		return tui.Cancelled[bool](), nil
	case "yes":
		return tui.Selected(true), nil
	default:
		return tui.Selected(false), nil
	}
}

// newTestContext wires fakes into a runtime.Context and captures console output
func newTestContext(t *testing.T, g *fakeGit, p tui.Prompter) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	splog, err := tui.NewSplogWithConfig(tui.SplogOptions{Writer: &buf})
	require.NoError(t, err)
	return runtime.NewContext(g, p, splog, config.Default()), &buf
}

// gitFailure builds the error the command runner returns for a failed invocation
func gitFailure(stderr string, args ...string) error {
	return bkerrors.NewExternalCommandError("git", args, "", stderr, nil)
}
