// Where: autoshutdown/internal/provider/ec2/client_test.go
// What: Tests for the EC2 StopInstances adapter.
// Why: Ensure SDK replies and failures map onto the stop port consistently.
package ec2

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/ports"
)

type fakeEC2 struct {
	out    *ec2.StopInstancesOutput
	err    error
	inputs []*ec2.StopInstancesInput
}

func (f *fakeEC2) StopInstances(_ context.Context, params *ec2.StopInstancesInput, _ ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func stateChange(id string, previous, current types.InstanceStateName) types.InstanceStateChange {
	return types.InstanceStateChange{
		InstanceId:    aws.String(id),
		PreviousState: &types.InstanceState{Name: previous},
		CurrentState:  &types.InstanceState{Name: current},
	}
}

func TestStopInstancesMapsResponse(t *testing.T) {
	api := &fakeEC2{out: &ec2.StopInstancesOutput{
		StoppingInstances: []types.InstanceStateChange{
			stateChange("i-abc", types.InstanceStateNameRunning, types.InstanceStateNameStopping),
		},
	}}

	resp, err := NewStopper(api).StopInstances(context.Background(), ports.StopRequest{
		InstanceIDs: []string{"i-abc", "i-def"},
	})
	if err != nil {
		t.Fatalf("StopInstances: %v", err)
	}
	if len(resp.StoppingInstances) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	got := resp.StoppingInstances[0]
	if got.InstanceID != "i-abc" || got.PreviousState != "running" || got.CurrentState != "stopping" {
		t.Fatalf("unexpected state change: %+v", got)
	}

	if len(api.inputs) != 1 {
		t.Fatalf("expected one SDK call")
	}
	input := api.inputs[0]
	if len(input.InstanceIds) != 2 || input.InstanceIds[1] != "i-def" {
		t.Fatalf("unexpected instance ids: %v", input.InstanceIds)
	}
	if aws.ToBool(input.DryRun) {
		t.Fatalf("expected dry run disabled")
	}
}

func TestStopInstancesPassesDryRun(t *testing.T) {
	api := &fakeEC2{out: &ec2.StopInstancesOutput{}}
	_, err := NewStopper(api).StopInstances(context.Background(), ports.StopRequest{
		InstanceIDs: []string{"i-abc"},
		DryRun:      true,
	})
	if err != nil {
		t.Fatalf("StopInstances: %v", err)
	}
	if !aws.ToBool(api.inputs[0].DryRun) {
		t.Fatalf("expected dry run flag")
	}
}

func TestStopInstancesEmptyConfirmation(t *testing.T) {
	api := &fakeEC2{out: &ec2.StopInstancesOutput{}}
	resp, err := NewStopper(api).StopInstances(context.Background(), ports.StopRequest{InstanceIDs: []string{"i-abc"}})
	if err != nil {
		t.Fatalf("StopInstances: %v", err)
	}
	if len(resp.InstanceIDs()) != 0 {
		t.Fatalf("expected no confirmed instances, got %v", resp.InstanceIDs())
	}
}

func TestStopInstancesRejectsMissingInstanceID(t *testing.T) {
	api := &fakeEC2{out: &ec2.StopInstancesOutput{
		StoppingInstances: []types.InstanceStateChange{{CurrentState: &types.InstanceState{Name: types.InstanceStateNameStopping}}},
	}}

	_, err := NewStopper(api).StopInstances(context.Background(), ports.StopRequest{InstanceIDs: []string{"i-abc"}})

	var providerErr *ports.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if !strings.Contains(providerErr.Error(), "invalid StopInstances response") {
		t.Fatalf("unexpected message: %v", providerErr)
	}
}

func TestStopInstancesRejectsNilOutput(t *testing.T) {
	_, err := NewStopper(&fakeEC2{}).StopInstances(context.Background(), ports.StopRequest{InstanceIDs: []string{"i-abc"}})
	if err == nil || !strings.Contains(err.Error(), "empty StopInstances response") {
		t.Fatalf("expected empty response error, got %v", err)
	}
}

func TestStopInstancesWrapsAPIError(t *testing.T) {
	api := &fakeEC2{err: &smithy.GenericAPIError{
		Code:    "UnauthorizedOperation",
		Message: "You are not authorized to perform this operation.",
	}}

	_, err := NewStopper(api).StopInstances(context.Background(), ports.StopRequest{InstanceIDs: []string{"i-abc"}})

	var providerErr *ports.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if providerErr.Code != "UnauthorizedOperation" {
		t.Fatalf("unexpected code: %s", providerErr.Code)
	}
	if err.Error() != "UnauthorizedOperation: You are not authorized to perform this operation." {
		t.Fatalf("unexpected detail: %s", err.Error())
	}
}

func TestStopInstancesWrapsTransportError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:4566: connect: connection refused")
	_, err := NewStopper(&fakeEC2{err: cause}).StopInstances(context.Background(), ports.StopRequest{InstanceIDs: []string{"i-abc"}})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if err.Error() != cause.Error() {
		t.Fatalf("unexpected detail: %s", err.Error())
	}
}

func TestStopInstancesRequiresClientAndIDs(t *testing.T) {
	if _, err := NewStopper(nil).StopInstances(context.Background(), ports.StopRequest{InstanceIDs: []string{"i-1"}}); err == nil {
		t.Fatalf("expected nil client error")
	}
	if _, err := NewStopper(&fakeEC2{}).StopInstances(context.Background(), ports.StopRequest{}); err == nil {
		t.Fatalf("expected missing ids error")
	}
}

func TestIsDryRunSuccess(t *testing.T) {
	api := &fakeEC2{err: &smithy.GenericAPIError{Code: "DryRunOperation", Message: "Request would have succeeded, but DryRun flag is set."}}
	_, err := NewStopper(api).StopInstances(context.Background(), ports.StopRequest{InstanceIDs: []string{"i-1"}, DryRun: true})
	if !IsDryRunSuccess(err) {
		t.Fatalf("expected dry run success for %v", err)
	}
	if IsDryRunSuccess(nil) {
		t.Fatalf("nil error is not a dry run signal")
	}
	if IsDryRunSuccess(&smithy.GenericAPIError{Code: "UnauthorizedOperation"}) {
		t.Fatalf("unauthorized is not a dry run success")
	}
	if !IsDryRunSuccess(&smithy.GenericAPIError{Code: "DryRunOperation"}) {
		t.Fatalf("expected raw API error to be detected")
	}
}
