// Where: autoshutdown/internal/provider/ec2/client.go
// What: EC2 StopInstances adapter.
// Why: Map SDK types to the typed StopResponse the handler consumes.
package ec2

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/go-playground/validator/v10"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/ports"
)

const (
	opStopInstances = "StopInstances"
	codeDryRunOK    = "DryRunOperation"
)

// StopInstancesAPI is the subset of *ec2.Client used here.
type StopInstancesAPI interface {
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

// Stopper implements ports.InstanceStopper on top of the EC2 API.
type Stopper struct {
	api      StopInstancesAPI
	validate *validator.Validate
}

// NewStopper wraps an EC2 API client.
func NewStopper(api StopInstancesAPI) *Stopper {
	return &Stopper{api: api, validate: validator.New()}
}

// StopInstances issues one bulk stop request.
func (s *Stopper) StopInstances(ctx context.Context, request ports.StopRequest) (ports.StopResponse, error) {
	if s == nil || s.api == nil {
		return ports.StopResponse{}, &ports.ProviderError{Op: opStopInstances, Message: "ec2 client is nil"}
	}
	if len(request.InstanceIDs) == 0 {
		return ports.StopResponse{}, &ports.ProviderError{Op: opStopInstances, Message: "instance IDs are required"}
	}

	out, err := s.api.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: request.InstanceIDs,
		DryRun:      aws.Bool(request.DryRun),
	})
	if err != nil {
		return ports.StopResponse{}, wrapError(err)
	}
	return s.decode(out)
}

func (s *Stopper) decode(out *ec2.StopInstancesOutput) (ports.StopResponse, error) {
	if out == nil {
		return ports.StopResponse{}, &ports.ProviderError{Op: opStopInstances, Message: "empty StopInstances response"}
	}
	resp := ports.StopResponse{
		StoppingInstances: make([]ports.StateChange, 0, len(out.StoppingInstances)),
	}
	for _, change := range out.StoppingInstances {
		resp.StoppingInstances = append(resp.StoppingInstances, ports.StateChange{
			InstanceID:    aws.ToString(change.InstanceId),
			PreviousState: stateName(change.PreviousState),
			CurrentState:  stateName(change.CurrentState),
		})
	}

	validate := s.validate
	if validate == nil {
		validate = validator.New()
	}
	if err := validate.Struct(resp); err != nil {
		return ports.StopResponse{}, &ports.ProviderError{
			Op:      opStopInstances,
			Message: fmt.Sprintf("invalid StopInstances response: %v", err),
			Err:     err,
		}
	}
	return resp, nil
}

func stateName(state *types.InstanceState) string {
	if state == nil {
		return ""
	}
	return string(state.Name)
}

func wrapError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &ports.ProviderError{
			Op:      opStopInstances,
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Err:     err,
		}
	}
	return &ports.ProviderError{Op: opStopInstances, Err: err}
}

// IsDryRunSuccess reports whether err is EC2's signal that a dry-run request
// would have succeeded.
func IsDryRunSuccess(err error) bool {
	if err == nil {
		return false
	}
	var providerErr *ports.ProviderError
	if errors.As(err, &providerErr) && providerErr.Code == codeDryRunOK {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == codeDryRunOK
}
