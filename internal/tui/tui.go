package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY returns true if both stdin and stdout are terminals
func IsTTY() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// IsInteractive reports whether prompts may be shown.
// BRANCHKIT_NON_INTERACTIVE forces non-interactive mode.
func IsInteractive() bool {
	if os.Getenv("BRANCHKIT_NON_INTERACTIVE") != "" {
		return false
	}
	return IsTTY()
}
