// Where: autoshutdown/internal/app/check.go
// What: check command.
// Why: Verify the caller may stop the configured instances without stopping them.
package app

import (
	"fmt"

	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/ports"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/provider/ec2"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/shutdown"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/ui"
)

func runCheck(cli CLI, deps Dependencies) int {
	cmd := cli.Check
	cfg := resolveConfig(deps.Env, cmd.InstanceIDs, cmd.AWS)

	ids, err := shutdown.Validate(cfg.Handler)
	if err != nil {
		return exitWithError(deps.Out, err)
	}

	stopper, err := deps.Clients.Stopper(deps.Context, cfg.EC2)
	if err != nil {
		return exitWithError(deps.Out, err)
	}

	console := ui.NewWithEmoji(deps.Out, !cli.NoEmoji)
	_, err = stopper.StopInstances(deps.Context, ports.StopRequest{InstanceIDs: ids, DryRun: true})
	switch {
	case ec2.IsDryRunSuccess(err):
		console.Success(fmt.Sprintf("StopInstances permitted for %s", ids))
		return 0
	case err == nil:
		// Some emulators ignore DryRun and report a normal stop.
		console.Warn(fmt.Sprintf("endpoint ignored DryRun; StopInstances accepted for %s", ids))
		return 0
	default:
		return exitWithError(deps.Out, fmt.Errorf("StopInstances not permitted: %w", err))
	}
}
