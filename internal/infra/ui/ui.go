// Where: internal/infra/ui/ui.go
// What: UI adapters for the command layer and the host log.
// Why: Give commands one output surface and give the build a ports.Logger.
package ui

import (
	"io"

	"github.com/poruru/build-client/internal/ports"
)

// UserInterface exposes high-level output helpers used by commands.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
}

// NewUI returns a UserInterface backed by an emoji-aware console.
func NewUI(out io.Writer, emojiEnabled bool) UserInterface {
	return NewWithEmoji(out, emojiEnabled)
}

// Logger writes build log lines through a Console under a fixed prefix.
type Logger struct {
	console *Console
	prefix  string
}

var _ ports.Logger = Logger{}

// NewLogger returns a Logger. Every line is written as "prefix: message".
func NewLogger(console *Console, prefix string) Logger {
	return Logger{console: console, prefix: prefix}
}

func (l Logger) Log(message string) {
	l.console.Log(l.prefix, message)
}
