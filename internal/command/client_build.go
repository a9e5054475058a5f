// Where: internal/command/client_build.go
// What: client build command adapter.
// Why: Wire CLI flags and project configuration into the client build lifecycle.
package command

import (
	"fmt"
	"io"

	domain "github.com/poruru/build-client/internal/domain/clientbuild"
	"github.com/poruru/build-client/internal/infra/build"
	"github.com/poruru/build-client/internal/infra/config"
	"github.com/poruru/build-client/internal/infra/env"
	"github.com/poruru/build-client/internal/infra/ui"
	"github.com/poruru/build-client/internal/meta"
	"github.com/poruru/build-client/internal/ports"
	"github.com/poruru/build-client/internal/usecase/clientbuild"
)

type (
	// ClientCmd groups the client subcommands.
	ClientCmd struct {
		Build ClientBuildCmd `cmd:"" help:"A plugin used to build front end applications"`
	}

	// ClientBuildCmd defines the client build command flags.
	ClientBuildCmd struct {
		Packager string `short:"p" help:"Packager used to build the client (yarn/npm)"`
		Command  string `short:"c" help:"Command passed to the packager"`
		Cwd      string `short:"d" help:"Working directory of the build"`
		Verbose  bool   `short:"v" help:"Log each environment variable as it is applied"`
	}
)

func (c ClientBuildCmd) options() domain.BuildOptions {
	return domain.BuildOptions{
		Packager: c.Packager,
		Command:  c.Command,
		Cwd:      c.Cwd,
		Verbose:  c.Verbose,
	}
}

// runClientBuild loads the project configuration and runs the
// before/build/after hooks of the client build lifecycle.
func runClientBuild(cli CLI, deps Dependencies, out io.Writer) int {
	loadProject := deps.LoadProject
	if loadProject == nil {
		loadProject = config.LoadProject
	}
	project, err := loadProject(cli.Config)
	if err != nil {
		return exitWithError(out, err)
	}
	if len(project.Provider.Unresolved) > 0 {
		console := commandUI(out, cli)
		for _, key := range project.Provider.Unresolved {
			console.Warn(fmt.Sprintf("Skipping provider.environment %s: value is not a scalar", key))
		}
	}

	spawner := deps.Spawner
	if spawner == nil {
		spawner = build.ExecSpawner{}
	}
	store := deps.EnvStore
	if store == nil {
		store = env.OSStore{}
	}

	logger := ui.NewLogger(ui.NewWithEmoji(out, !cli.NoEmoji), meta.LogPrefix)
	runner := build.NewRunner(spawner, logger, ports.ErrorFunc(domain.NewError))

	plugin, err := clientbuild.New(
		clientbuild.Inputs{
			Options:             cli.Client.Build.options(),
			Configuration:       project.BuildConfiguration(),
			ProviderEnvironment: project.ProviderEnvironment(),
		},
		clientbuild.Deps{
			Logger:   logger,
			EnvStore: store,
			Runner:   runner,
		},
	)
	if err != nil {
		return exitWithError(out, err)
	}

	if err := clientbuild.RunLifecycle(plugin.Hooks(), clientbuild.EventClientBuild); err != nil {
		return exitWithError(out, err)
	}
	return 0
}
