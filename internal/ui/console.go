// Where: autoshutdown/internal/ui/console.go
// What: Console output helpers for the operator CLI.
// Why: Keep result, warning and error lines uniform across commands.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console writes human-readable lines to Out.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
}

// New creates a Console with emoji prefixes enabled.
func New(out io.Writer) *Console {
	return &Console{Out: out, EmojiEnabled: true}
}

// NewWithEmoji creates a Console with explicit emoji settings.
func NewWithEmoji(out io.Writer, enabled bool) *Console {
	return &Console{Out: out, EmojiEnabled: enabled}
}

// BlockStart prints a blank line followed by a header.
// Example: 🛑 Auto-shutdown
func (c *Console) BlockStart(emoji, title string) {
	fmt.Fprintln(c.Out)
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix(emoji, ""), title)
}

// BlockEnd closes a block with a blank line.
func (c *Console) BlockEnd() {
	fmt.Fprintln(c.Out)
}

// Item prints an indented key/value row.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-14s %v\n", key+":", value)
}

// Success prints msg with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("✅", "[ok] "), msg)
}

// Warn prints msg with a warning sign.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("⚠️", "[warn] "), msg)
}

// Fail prints msg with a cross.
func (c *Console) Fail(msg string) {
	fmt.Fprintf(c.Out, "✗ %s\n", msg)
}

func (c *Console) prefix(emoji, fallback string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return fallback
	}
	return emoji + " "
}
