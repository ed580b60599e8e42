// Where: autoshutdown/internal/shutdown/result.go
// What: Invocation result returned to the runtime.
// Why: Keep the statusCode/body contract in one place.
package shutdown

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	bodyMissing  = "No instance IDs configured"
	bodyEmpty    = "No valid instance IDs"
	bodyStopped  = "Stopped instances: %s"
	bodyProvider = "Error: %s"
)

// Result is the value handed back to the invoking runtime.
type Result struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	Body       string `json:"body" yaml:"body"`
}

// OK reports whether the stop request was accepted.
func (r Result) OK() bool {
	return r.StatusCode == http.StatusOK
}

func stoppedResult(ids InstanceIDs) Result {
	return Result{StatusCode: http.StatusOK, Body: fmt.Sprintf(bodyStopped, ids)}
}

func configurationResult(err error) Result {
	body := bodyEmpty
	if errors.Is(err, ErrConfigurationMissing) {
		body = bodyMissing
	}
	return Result{StatusCode: http.StatusBadRequest, Body: body}
}

func providerFailureResult(err error) Result {
	return Result{StatusCode: http.StatusInternalServerError, Body: fmt.Sprintf(bodyProvider, err)}
}
