// Where: autoshutdown/internal/meta/meta.go
// What: Project identity constants.
// Why: Share names between the Lambda entrypoint and the operator CLI.
package meta

const (
	AppName      = "autoshutdownctl"
	FunctionName = "auto-shutdown"
	EnvFile      = ".env"
)
