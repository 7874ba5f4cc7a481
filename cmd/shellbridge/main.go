package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mpyw/shellbridge/internal/cli/commands"
	"github.com/mpyw/shellbridge/internal/cli/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.App.Run(ctx, os.Args)

	stop()

	if err != nil {
		output.Error(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
