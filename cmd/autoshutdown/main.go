// Where: autoshutdown/cmd/autoshutdown/main.go
// What: Lambda entrypoint.
// Why: Build the EC2 client once per cold start and serve invocations.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/config"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/envutil"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/logging"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/provider/ec2"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/version"
)

func main() {
	env := envutil.FromOS()
	cfg := config.Load(env)
	logger := logging.New(os.Stdout, cfg.LogLevel).With(slog.String("version", version.GetVersion()))

	stopper, err := ec2.NewClientFactory().Stopper(context.Background(), cfg.EC2)
	if err != nil {
		logger.Error("Failed to configure EC2 client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lambda.Start(newFunction(stopper, logger, env))
}
