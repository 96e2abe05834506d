// Package actions provides the workflows behind each branchkit command.
//
// Each action corresponds to one workflow (create, clean, recent, hotfix-copy)
// and orchestrates prompts and git operations through a runtime.Context.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Git, Prompter, Splog and Config
//   - Actions are stateless; the repository is the only state
//   - A cancelled prompt stops the workflow with errors.ErrCancelled
//   - Git failures are returned wrapped, never swallowed
package actions
