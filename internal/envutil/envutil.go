// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"
)

// Getter looks up an environment variable, returning "" when unset.
type Getter func(key string) string

// FromOS returns a Getter backed by the process environment.
func FromOS() Getter {
	return os.Getenv
}

// FromMap returns a Getter backed by a fixed map.
// Example: FromMap(map[string]string{"INSTANCE_IDS": "i-1"})
func FromMap(values map[string]string) Getter {
	return func(key string) string {
		return values[key]
	}
}

// Trimmed looks up key and trims surrounding whitespace.
func (g Getter) Trimmed(key string) string {
	if g == nil {
		return ""
	}
	return strings.TrimSpace(g(key))
}

// Raw looks up key without modification.
func (g Getter) Raw(key string) string {
	if g == nil {
		return ""
	}
	return g(key)
}
