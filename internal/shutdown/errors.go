// Where: autoshutdown/internal/shutdown/errors.go
// What: Failure taxonomy for shutdown invocations.
// Why: Map each failure class to one status code and body.
package shutdown

import "errors"

var (
	// ErrConfigurationMissing means INSTANCE_IDS is unset or empty.
	ErrConfigurationMissing = errors.New("no instance IDs configured")
	// ErrConfigurationEmpty means INSTANCE_IDS held only separators or whitespace.
	ErrConfigurationEmpty = errors.New("no valid instance IDs")
)
