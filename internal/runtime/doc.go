// Package runtime provides the execution context for branchkit workflows.
//
// It encapsulates shared dependencies and configuration needed by actions,
// such as the git adapter, the prompter, the logger, and the repository root.
// Nothing here is global: the CLI builds one Context per invocation.
package runtime
