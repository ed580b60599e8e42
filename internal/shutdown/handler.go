// Where: autoshutdown/internal/shutdown/handler.go
// What: Auto-shutdown invocation handler.
// Why: Stop the configured instances and describe the outcome as a Result.
package shutdown

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/ports"
)

// Config is the per-invocation handler input.
type Config struct {
	// InstanceIDsRaw is the comma-separated INSTANCE_IDS value.
	InstanceIDsRaw string
}

// Handler stops a configured list of instances.
// It keeps no state between calls and is safe for concurrent use.
type Handler struct {
	stopper ports.InstanceStopper
	logger  *slog.Logger
}

// New constructs a Handler. A nil logger discards log output.
func New(stopper ports.InstanceStopper, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{stopper: stopper, logger: logger}
}

// Validate parses cfg and reports a configuration error when nothing can be stopped.
func Validate(cfg Config) (InstanceIDs, error) {
	if cfg.InstanceIDsRaw == "" {
		return nil, ErrConfigurationMissing
	}
	ids := ParseInstanceIDs(cfg.InstanceIDsRaw)
	if len(ids) == 0 {
		return nil, ErrConfigurationEmpty
	}
	return ids, nil
}

// Handle runs one invocation. Every failure is converted into a Result.
func (h *Handler) Handle(ctx context.Context, cfg Config) Result {
	ids, err := Validate(cfg)
	if err != nil {
		if errors.Is(err, ErrConfigurationMissing) {
			h.logger.WarnContext(ctx, "No INSTANCE_IDS environment variable set")
		} else {
			h.logger.WarnContext(ctx, "No valid instance IDs found")
		}
		return configurationResult(err)
	}

	h.logger.InfoContext(ctx, "Stopping instances", slog.Any("instance_ids", []string(ids)))

	if h.stopper == nil {
		err := &ports.ProviderError{Op: "StopInstances", Message: "instance stopper not configured"}
		h.logger.ErrorContext(ctx, "Failed to stop instances", slog.String("error", err.Error()))
		return providerFailureResult(err)
	}

	resp, err := h.stopper.StopInstances(ctx, ports.StopRequest{InstanceIDs: ids})
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to stop instances", slog.String("error", err.Error()))
		return providerFailureResult(err)
	}

	stopping := InstanceIDs(resp.InstanceIDs())
	h.logger.InfoContext(ctx, "Successfully initiated stop", slog.Any("stopping_instances", []string(stopping)))
	return stoppedResult(stopping)
}
