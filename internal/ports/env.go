// Where: internal/ports/env.go
// What: Process environment store port.
// Why: Environment writes are a one-way side effect; tests substitute a map.
package ports

// EnvStore applies variables to the environment inherited by build processes.
// There is no snapshot or restore; writes persist for the life of the process.
type EnvStore interface {
	Setenv(key, value string) error
}
