// Where: autoshutdown/cmd/autoshutdown/function.go
// What: Lambda function body.
// Why: Bind per-invocation logging and config to the shutdown handler.
package main

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/config"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/envutil"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/ports"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/shutdown"
)

type function func(ctx context.Context, event json.RawMessage) (shutdown.Result, error)

// newFunction returns the Lambda handler. The event payload is not inspected,
// and the returned error is always nil: failures travel in the Result.
func newFunction(stopper ports.InstanceStopper, logger *slog.Logger, env envutil.Getter) function {
	return func(ctx context.Context, _ json.RawMessage) (shutdown.Result, error) {
		invocationLogger := logger
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			invocationLogger = logger.With(slog.String("aws_request_id", lc.AwsRequestID))
		}
		handler := shutdown.New(stopper, invocationLogger)
		return handler.Handle(ctx, config.LoadHandler(env)), nil
	}
}
