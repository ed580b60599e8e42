// Where: autoshutdown/internal/shutdown/parse.go
// What: Instance ID list parsing and rendering.
// Why: Turn the raw INSTANCE_IDS value into the list sent to the provider.
package shutdown

import "strings"

// InstanceIDs is an ordered list of non-empty instance identifiers.
type InstanceIDs []string

// ParseInstanceIDs splits raw on commas, trims each token and drops empty ones.
// The input order is kept.
func ParseInstanceIDs(raw string) InstanceIDs {
	if raw == "" {
		return InstanceIDs{}
	}
	parts := strings.Split(raw, ",")
	out := make(InstanceIDs, 0, len(parts))
	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}

// String renders the list as ['a', 'b'], the format used in response bodies.
func (ids InstanceIDs) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(id)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}
