// Where: autoshutdown/cmd/autoshutdownctl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/app"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/envutil"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/provider/ec2"
)

// buildDependencies constructs the runtime dependencies used by the CLI.
func buildDependencies(ctx context.Context) app.Dependencies {
	return app.Dependencies{
		Context: ctx,
		Out:     os.Stdout,
		LogOut:  os.Stderr,
		Env:     envutil.FromOS(),
		Clients: ec2.NewClientFactory(),
	}
}

// signalContext cancels in-flight AWS calls on Ctrl-C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
