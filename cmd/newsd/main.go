// Package main provides the entry point for the newsd server CLI.
package main

import (
	"context"
	"os"

	"github.com/newsbench/newsd/cmd/newsd/app"
)

// Version information populated by the build system.
var (
	version = "1.0.0"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
