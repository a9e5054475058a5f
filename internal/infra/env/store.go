// Where: internal/infra/env/store.go
// What: Process environment store.
// Why: Build processes inherit variables written here.
package env

import (
	"fmt"
	"os"
)

// OSStore writes to the environment of the current process.
type OSStore struct{}

func (OSStore) Setenv(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set env %s: %w", key, err)
	}
	return nil
}
