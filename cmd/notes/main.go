// cmd/notes/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	app "record-notes/internal"
	"record-notes/internal/util"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create and initialize the application
	application := app.NewApplication()
	if err := application.Initialize(ctx); err != nil {
		// Configuration failed, so fall back to the default-level logger.
		util.GetLogger().Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(ctx, os.Stdout, os.Stderr); err != nil {
		application.Logger.Error("Application run failed", "error", err)
		os.Exit(1)
	}
}
