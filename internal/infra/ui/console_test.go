// Where: internal/infra/ui/console_test.go
// What: Tests for console output helpers.
// Why: Log lines and emoji toggling are user-visible.
package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleEmojiToggle(t *testing.T) {
	var withEmoji, plain bytes.Buffer

	NewWithEmoji(&withEmoji, true).Warn("Careful")
	NewWithEmoji(&plain, false).Warn("Careful")

	assert.Equal(t, "⚠️ Careful\n", withEmoji.String())
	assert.Equal(t, "[warn] Careful\n", plain.String())
}

func TestLoggerPrefix(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(New(&out), "BuildClient")

	logger.Log("Building the client")
	NewLogger(New(&out), "").Log("bare")

	assert.Equal(t, "BuildClient: Building the client\nbare\n", out.String())
}

func TestNewUIInfo(t *testing.T) {
	var out bytes.Buffer
	NewUI(&out, true).Info("Usage:")
	assert.Equal(t, "Usage:\n", out.String())
}
