package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/tracy/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runner := NewRunner(RunnerOpts{
		Logger: logger,
		Opener: newOpener(),
	})

	if err := runner.command().Run(ctx, os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
