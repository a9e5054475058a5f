// Where: internal/ports/errors.go
// What: Error construction port.
// Why: The host decides which error type carries messages read from a build's stderr.
package ports

// ErrorFactory builds an error value from a message.
type ErrorFactory interface {
	Error(message string) error
}

// ErrorFunc adapts a plain function to ErrorFactory.
type ErrorFunc func(message string) error

// Error calls f(message).
func (f ErrorFunc) Error(message string) error {
	return f(message)
}
