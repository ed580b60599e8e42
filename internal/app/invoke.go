// Where: autoshutdown/internal/app/invoke.go
// What: invoke command.
// Why: Run the same handler the Lambda function runs, from a workstation.
package app

import (
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/logging"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/shutdown"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/ui"
)

// runInvoke exits 0 only when the handler returned 200.
func runInvoke(cli CLI, deps Dependencies) int {
	cmd := cli.Invoke
	cfg := resolveConfig(deps.Env, cmd.InstanceIDs, cmd.AWS)

	level := cmd.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger := logging.New(deps.LogOut, level)

	stopper, err := deps.Clients.Stopper(deps.Context, cfg.EC2)
	if err != nil {
		return exitWithError(deps.Out, err)
	}

	result := shutdown.New(stopper, logger).Handle(deps.Context, cfg.Handler)

	console := ui.NewWithEmoji(deps.Out, !cli.NoEmoji)
	if err := render(deps.Out, result, cmd.Output, cmd.Format, func() { printResult(console, result) }); err != nil {
		return exitWithError(deps.Out, err)
	}
	if !result.OK() {
		return 1
	}
	return 0
}

func printResult(console *ui.Console, result shutdown.Result) {
	console.BlockStart("🛑", "Auto-shutdown")
	console.Item("Status", result.StatusCode)
	console.Item("Body", result.Body)
	console.BlockEnd()
	if result.OK() {
		console.Success("stop requested")
		return
	}
	console.Warn("stop not requested")
}
