// Where: internal/domain/clientbuild/errors.go
// What: Error types for build resolution.
// Why: Callers distinguish invalid input (caught before spawning) from build failures.
package clientbuild

import "errors"

var (
	ErrInvalidPackager = errors.New("invalid packager")
	ErrMissingCommand  = errors.New("missing build command")

	errCommandWithoutPackager = errors.New("default command for unregistered packager")
	errUnknownDefaultPackager = errors.New("default packager is not registered")
	errEnvStoreNil            = errors.New("env store is nil")
)

// ValidationError reports build input rejected before any process is spawned.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PluginError is the error value built by NewError.
type PluginError struct {
	Message string
}

func (e *PluginError) Error() string {
	return e.Message
}

// NewError returns a *PluginError carrying message.
func NewError(message string) error {
	return &PluginError{Message: message}
}
