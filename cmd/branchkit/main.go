package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"branchkit.dev/branchkit/internal/cli"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// An interrupt outside a prompt ends the program successfully. Cancelling
	// ctx has already killed any running git process.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			os.Exit(0)
		case <-done:
		}
	}()

	code := cli.Execute(ctx, os.Args[1:], versionString())
	close(done)
	if ctx.Err() != nil {
		code = 0
	}
	stop()
	os.Exit(code)
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("%s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
