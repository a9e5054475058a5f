// Where: cmd/build-client/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/build-client/internal/command"
	"github.com/poruru/build-client/internal/infra/build"
	"github.com/poruru/build-client/internal/infra/config"
	"github.com/poruru/build-client/internal/infra/env"
)

// buildDependencies constructs the runtime dependencies of the CLI: the real
// process spawner, the process environment and the project file loader.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		Spawner:     build.ExecSpawner{},
		EnvStore:    env.OSStore{},
		LoadProject: config.LoadProject,
		LoadEnvFile: env.LoadFile,
	}
}
