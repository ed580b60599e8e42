// Where: autoshutdown/internal/ports/stop_test.go
// What: Tests for stop port value helpers.
// Why: Keep the error detail format stable since it ends up in response bodies.
package ports

import (
	"errors"
	"testing"
)

func TestStopResponseInstanceIDsKeepsOrder(t *testing.T) {
	resp := StopResponse{StoppingInstances: []StateChange{
		{InstanceID: "i-2"},
		{InstanceID: "i-1"},
	}}
	ids := resp.InstanceIDs()
	if len(ids) != 2 || ids[0] != "i-2" || ids[1] != "i-1" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestStopResponseInstanceIDsEmpty(t *testing.T) {
	ids := StopResponse{}.InstanceIDs()
	if ids == nil || len(ids) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", ids)
	}
}

func TestProviderErrorMessage(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	tests := []struct {
		name string
		err  *ProviderError
		want string
	}{
		{name: "code and message", err: &ProviderError{Code: "UnauthorizedOperation", Message: "denied"}, want: "UnauthorizedOperation: denied"},
		{name: "code only", err: &ProviderError{Code: "AccessDenied"}, want: "AccessDenied"},
		{name: "message only", err: &ProviderError{Message: "bad response"}, want: "bad response"},
		{name: "cause only", err: &ProviderError{Err: cause}, want: "dial tcp: timeout"},
		{name: "nothing", err: &ProviderError{Op: "StopInstances"}, want: "StopInstances failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := error(&ProviderError{Op: "StopInstances", Err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
}
