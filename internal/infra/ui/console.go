// Where: internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis and the host log prefix across commands.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console provides helper methods for formatted output. It is safe for
// concurrent use.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool

	mu sync.Mutex
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out, EmojiEnabled: true}
}

// NewWithEmoji creates a new Console with explicit emoji settings.
func NewWithEmoji(out io.Writer, enabled bool) *Console {
	return &Console{Out: out, EmojiEnabled: enabled}
}

// Log prints a host log line.
// Example: BuildClient: Building the client.
func (c *Console) Log(prefix, msg string) {
	if prefix == "" {
		c.printf("%s\n", msg)
		return
	}
	c.printf("%s: %s\n", prefix, msg)
}

// Info prints an info message.
func (c *Console) Info(msg string) {
	c.printf("%s\n", msg)
}

// Warn prints a warning message with an emoji.
func (c *Console) Warn(msg string) {
	prefix := c.emojiPrefix("⚠️")
	if prefix == "" {
		prefix = "[warn] "
	}
	c.printf("%s%s\n", prefix, msg)
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
