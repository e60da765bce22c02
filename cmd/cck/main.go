package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"comchemkit/internal/cli"
)

func main() {
	// SIGINT/SIGTERM cancel the context; batch processing stops
	// between files
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(cli.Execute(ctx))
}
