package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskparse/internal/command/delivery/cli"
	"taskparse/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     log.ModeProduction,
		Encoding: log.EncodingConsole,
		Output:   os.Stderr,
	})

	if err := cli.NewRootCommand(logger, os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
