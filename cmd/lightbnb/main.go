package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/lightbnb/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRootCmd(cli.OpenApp, os.Stdout).ExecuteContext(ctx)
	stop()

	os.Exit(cli.ReportError(os.Stderr, err))
}
