// Where: autoshutdown/internal/app/app.go
// What: Operator CLI entrypoint logic.
// Why: Provide a testable command dispatcher around the shutdown handler.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/envutil"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/meta"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/provider/ec2"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Tests swap Env and Clients to avoid touching the process environment or AWS.
// LogOut receives the handler's JSON log lines.
type Dependencies struct {
	Context context.Context
	Out     io.Writer
	LogOut  io.Writer
	Env     envutil.Getter
	Clients ec2.ClientFactory
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile string     `name:"env-file" help:"Path to .env file (default: ./.env when present)"`
	NoEmoji bool       `name:"no-emoji" help:"Disable emoji output"`
	Invoke  InvokeCmd  `cmd:"" help:"Run the shutdown handler locally against EC2"`
	Check   CheckCmd   `cmd:"" help:"Check StopInstances permission with a dry run"`
	Parse   ParseCmd   `cmd:"" help:"Print the parsed instance ID list"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// AWSFlags overrides the AWS client settings read from the environment.
type AWSFlags struct {
	Region   string `help:"AWS region (default: AWS_REGION, then us-east-1)"`
	Endpoint string `help:"EC2 endpoint override, e.g. a local emulator"`
}

type (
	InvokeCmd struct {
		InstanceIDs string   `name:"instance-ids" help:"Comma-separated instance IDs (default: INSTANCE_IDS)"`
		AWS         AWSFlags `embed:""`
		Output      string   `short:"o" default:"text" enum:"text,json,yaml" help:"Output format (text/json/yaml)"`
		Format      string   `help:"Go template for the result; sprig functions are available"`
		LogLevel    string   `name:"log-level" help:"Handler log level (default: LOG_LEVEL, then info)"`
	}
	CheckCmd struct {
		InstanceIDs string   `name:"instance-ids" help:"Comma-separated instance IDs (default: INSTANCE_IDS)"`
		AWS         AWSFlags `embed:""`
	}
	ParseCmd struct {
		InstanceIDs string `name:"instance-ids" help:"Comma-separated instance IDs (default: INSTANCE_IDS)"`
		Output      string `short:"o" default:"text" enum:"text,json,yaml" help:"Output format (text/json/yaml)"`
	}
	VersionCmd struct{}
)

// Run parses args, dispatches to the matching command and returns the exit code.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out

	cli := CLI{}
	exited, exitCode := false, 0
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Stop the instances listed in INSTANCE_IDS."),
		kong.Writers(out, out),
		kong.Exit(func(code int) { exited, exitCode = true, code }),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	if len(args) == 0 {
		args = []string{"--help"}
	}
	ctx, err := parser.Parse(args)
	if exited {
		// --help already printed usage.
		return exitCode
	}
	if err != nil {
		return exitWithError(out, err)
	}

	env, err := layerEnvFile(cli.EnvFile, deps.Env)
	if err != nil {
		fmt.Fprintf(out, "Warning: failed to load env file: %v\n", err)
	} else {
		deps.Env = env
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps); handled {
		return exitCode
	}
	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies) int

func dispatchCommand(command string, cli CLI, deps Dependencies) (int, bool) {
	handlers := map[string]commandHandler{
		"invoke":  runInvoke,
		"check":   runCheck,
		"parse":   runParse,
		"version": runVersion,
	}
	if handler, ok := handlers[command]; ok {
		return handler(cli, deps), true
	}
	return 1, false
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.LogOut == nil {
		deps.LogOut = os.Stderr
	}
	if deps.Env == nil {
		deps.Env = envutil.FromOS()
	}
	if deps.Clients == nil {
		deps.Clients = ec2.NewClientFactory()
	}
	return deps
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, deps Dependencies) int {
	fmt.Fprintf(deps.Out, "%s %s\n", meta.AppName, version.GetVersion())
	return 0
}
