// Where: autoshutdown/internal/ports/stop.go
// What: InstanceStopper port definitions.
// Why: Let the handler stop instances without depending on the AWS SDK.
package ports

import (
	"context"
	"fmt"
)

// StopRequest contains parameters for a bulk stop call.
type StopRequest struct {
	InstanceIDs []string
	// DryRun asks the provider to check permissions without stopping anything.
	DryRun bool
}

// StateChange describes one instance the provider accepted for stopping.
type StateChange struct {
	InstanceID    string `validate:"required"`
	PreviousState string
	CurrentState  string
}

// StopResponse is the typed view of the provider's reply.
// Instances that were already stopped may be absent.
type StopResponse struct {
	StoppingInstances []StateChange `validate:"dive"`
}

// InstanceIDs returns the confirmed instance IDs in response order.
func (r StopResponse) InstanceIDs() []string {
	ids := make([]string, 0, len(r.StoppingInstances))
	for _, change := range r.StoppingInstances {
		ids = append(ids, change.InstanceID)
	}
	return ids
}

// InstanceStopper defines the control-plane operation used by the handler.
type InstanceStopper interface {
	StopInstances(ctx context.Context, request StopRequest) (StopResponse, error)
}

// ProviderError wraps a failed control-plane call.
// Error returns the detail shown to callers.
type ProviderError struct {
	Op      string
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	case e.Code != "":
		return e.Code
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s failed", e.Op)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
