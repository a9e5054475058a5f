// Where: internal/infra/build/errors.go
// What: Error types reported by the build runner.
// Why: Callers need the exit code and the last stderr-derived cause of a failed build.
package build

import (
	"errors"
	"fmt"
)

var (
	errSpawnerNil = errors.New("spawner is nil")
	errLoggerNil  = errors.New("logger is nil")
)

// SpawnError reports that the build process could not be started or awaited.
type SpawnError struct {
	Executable string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s: %v", e.Executable, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// BuildError reports a build that closed with a non-zero exit code.
//
// Its message is the message of Cause, the last error recorded from stderr
// or from spawning. A build that failed without writing to stderr has a nil
// Cause and an empty message.
type BuildError struct {
	ExitCode int
	Cause    error
}

func (e *BuildError) Error() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
