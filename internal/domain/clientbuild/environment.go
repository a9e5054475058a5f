// Where: internal/domain/clientbuild/environment.go
// What: Environment variable resolution for the client build.
// Why: Provider and build-level variables must reach the build process with defined precedence.
package clientbuild

import (
	"fmt"
	"sort"

	"github.com/poruru/build-client/internal/ports"
)

const (
	MsgSettingEnvironment = "Setting the environment variables"
	MsgNoEnvironment      = "No environment variables detected. Skipping step..."
)

// ResolveEnvironment merges providerEnv with customEnv. Keys present in both
// take the custom value. The CLI verbose flag and the configured one are
// combined; either enables verbose logging.
func ResolveEnvironment(
	providerEnv map[string]string,
	customEnv map[string]string,
	verboseOption bool,
	verboseConfig bool,
) (map[string]string, bool) {
	merged := make(map[string]string, len(providerEnv)+len(customEnv))
	for key, value := range providerEnv {
		merged[key] = value
	}
	for key, value := range customEnv {
		merged[key] = value
	}
	return merged, verboseOption || verboseConfig
}

// ApplyEnvironment writes env into store. The "Setting the environment
// variables" line is always logged first, even when env is empty; an empty env
// then logs the skip line and writes nothing. When verbose, each variable is
// logged before it is written.
//
// Writes are one-way: nothing is restored after the build.
func ApplyEnvironment(env map[string]string, verbose bool, logger ports.Logger, store ports.EnvStore) error {
	logger.Log(MsgSettingEnvironment)
	if len(env) == 0 {
		logger.Log(MsgNoEnvironment)
		return nil
	}
	if store == nil {
		return errEnvStoreNil
	}

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := env[key]
		if verbose {
			logger.Log(fmt.Sprintf("Setting %s to %s", key, value))
		}
		if err := store.Setenv(key, value); err != nil {
			return fmt.Errorf("apply environment %s: %w", key, err)
		}
	}
	return nil
}
