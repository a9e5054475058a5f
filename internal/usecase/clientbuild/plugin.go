// Where: internal/usecase/clientbuild/plugin.go
// What: Client build plugin: command metadata and lifecycle hooks.
// Why: Drive environment resolution and the build process from one lifecycle event.
package clientbuild

import (
	"errors"

	domain "github.com/poruru/build-client/internal/domain/clientbuild"
	"github.com/poruru/build-client/internal/ports"
)

const (
	MsgBuildingClient = "Building the client"
	MsgBuiltClient    = "Successfully built the client"

	usage = "A plugin used to build front end applications"
)

var (
	errLoggerNil = errors.New("logger is nil")
	errRunnerNil = errors.New("build runner is nil")
)

// BuildRunner runs a resolved build to completion.
type BuildRunner interface {
	Run(spec domain.BuildSpec) error
}

// Inputs are the CLI options and project configuration of one invocation.
type Inputs struct {
	Options             domain.BuildOptions
	Configuration       domain.BuildConfiguration
	ProviderEnvironment map[string]string
}

// Deps are the host capabilities the plugin needs.
type Deps struct {
	Logger   ports.Logger
	EnvStore ports.EnvStore
	Runner   BuildRunner
	Registry *domain.Registry
}

// Plugin holds the inputs of one client build invocation.
type Plugin struct {
	inputs   Inputs
	logger   ports.Logger
	envStore ports.EnvStore
	runner   BuildRunner
	registry domain.Registry
}

// New returns a Plugin. A nil Registry uses domain.DefaultRegistry.
func New(inputs Inputs, deps Deps) (*Plugin, error) {
	if deps.Logger == nil {
		return nil, errLoggerNil
	}
	if deps.Runner == nil {
		return nil, errRunnerNil
	}
	registry := domain.DefaultRegistry()
	if deps.Registry != nil {
		registry = *deps.Registry
	}
	return &Plugin{
		inputs:   inputs,
		logger:   deps.Logger,
		envStore: deps.EnvStore,
		runner:   deps.Runner,
		registry: registry,
	}, nil
}

// Commands describes the commands this plugin contributes to the host CLI.
func (p *Plugin) Commands() map[string]Command {
	return map[string]Command{
		"client": {
			Usage: usage,
			Commands: map[string]Command{
				"build": {
					Usage:           usage,
					LifecycleEvents: []string{"build"},
					Options: map[string]Option{
						"packager": {Usage: "Packager used to build the client (yarn/npm)", Shortcut: "p"},
						"command":  {Usage: "Command passed to the packager", Shortcut: "c"},
						"cwd":      {Usage: "Working directory of the build", Shortcut: "d"},
						"verbose":  {Usage: "Log each environment variable as it is applied", Shortcut: "v"},
					},
				},
			},
		},
	}
}

// Hooks maps lifecycle hook names to their handlers.
func (p *Plugin) Hooks() map[string]Hook {
	return map[string]Hook{
		BeforeHook(EventClientBuild): p.BeforeBuild,
		EventClientBuild:             p.Build,
		AfterHook(EventClientBuild):  p.AfterBuild,
	}
}

// BeforeBuild merges provider and build-level environment variables and
// applies them to the environment the build process inherits.
func (p *Plugin) BeforeBuild() error {
	env, verbose := domain.ResolveEnvironment(
		p.inputs.ProviderEnvironment,
		p.inputs.Configuration.Environment,
		p.inputs.Options.Verbose,
		p.inputs.Configuration.Verbose,
	)
	return domain.ApplyEnvironment(env, verbose, p.logger, p.envStore)
}

// Build resolves the build spec and runs it. An invalid packager fails
// before any process is spawned.
func (p *Plugin) Build() error {
	p.logger.Log(MsgBuildingClient)
	spec, err := domain.ResolveBuildSpec(p.inputs.Options, p.inputs.Configuration, p.registry)
	if err != nil {
		return err
	}
	return p.runner.Run(spec)
}

// AfterBuild reports a successful build.
func (p *Plugin) AfterBuild() error {
	p.logger.Log(MsgBuiltClient)
	return nil
}
