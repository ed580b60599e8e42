// Where: autoshutdown/cmd/autoshutdownctl/main.go
// What: Operator CLI entrypoint.
// Why: Invoke or check the auto-shutdown handler from a workstation.
package main

import (
	"os"

	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/app"
)

func main() {
	ctx, stop := signalContext()
	code := app.Run(os.Args[1:], buildDependencies(ctx))
	stop()
	os.Exit(code)
}
