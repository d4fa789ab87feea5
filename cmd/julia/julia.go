package main

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/pkg/cli"
	"os"
	"os/signal"
	"syscall"
)

func mainCmd() *cobra.Command {
	return cli.NewCommand(cli.JuliaKind)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := mainCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
