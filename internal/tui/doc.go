// Package tui provides the terminal user interface for branchkit.
//
// It handles:
//   - Interactive prompts and selections (using survey)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
