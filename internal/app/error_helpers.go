// Where: autoshutdown/internal/app/error_helpers.go
// What: Shared CLI error output.
// Why: Keep failure lines and exit codes consistent across commands.
package app

import (
	"io"

	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/ui"
)

// exitWithError prints err and returns exit code 1.
func exitWithError(out io.Writer, err error) int {
	ui.New(out).Fail(err.Error())
	return 1
}
