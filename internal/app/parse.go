// Where: autoshutdown/internal/app/parse.go
// What: parse command.
// Why: Show exactly which IDs an INSTANCE_IDS value resolves to.
package app

import (
	"fmt"

	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/config"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/shutdown"
)

func runParse(cli CLI, deps Dependencies) int {
	cmd := cli.Parse
	handlerCfg := config.LoadHandler(deps.Env)
	if cmd.InstanceIDs != "" {
		handlerCfg.InstanceIDsRaw = cmd.InstanceIDs
	}

	ids, err := shutdown.Validate(handlerCfg)
	if err != nil {
		return exitWithError(deps.Out, err)
	}

	err = render(deps.Out, []string(ids), cmd.Output, "", func() {
		for _, id := range ids {
			fmt.Fprintln(deps.Out, id)
		}
	})
	if err != nil {
		return exitWithError(deps.Out, err)
	}
	return 0
}
