// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Identity lookup (user.name)
//   - Branch management (create, delete, checkout, merged listing)
//   - Repo state queries (reflog, commit ranges, current branch)
//   - Cherry-picking and submodule updates
//
// Commands run through CommandRunner, which treats any stderr output as
// failure. All parsing of git's text output lives in parse.go.
//
// This package should be the only place where direct git commands are executed.
package git
