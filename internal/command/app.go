// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/poruru/build-client/internal/infra/build"
	"github.com/poruru/build-client/internal/infra/config"
	"github.com/poruru/build-client/internal/infra/env"
	"github.com/poruru/build-client/internal/meta"
	"github.com/poruru/build-client/internal/ports"
	"github.com/poruru/build-client/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to the real implementations.
type Dependencies struct {
	Out         io.Writer
	ErrOut      io.Writer
	Spawner     build.Spawner
	EnvStore    ports.EnvStore
	LoadProject func(path string) (config.Project, error)
	LoadEnvFile func(path string) (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Config  string     `short:"f" name:"config" default:"serverless.yml" help:"Path to the project configuration file"`
	EnvFile string     `name:"env-file" help:"Path to .env file"`
	NoEmoji bool       `name:"no-emoji" help:"Disable emoji output"`
	Client  ClientCmd  `cmd:"" help:"Front end client commands"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description(meta.Description),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	loadEnvFile := deps.LoadEnvFile
	if loadEnvFile == nil {
		loadEnvFile = env.LoadFile
	}
	if _, err := loadEnvFile(cli.EnvFile); err != nil {
		commandUI(out, cli).Warn(fmt.Sprintf("Warning: %v", err))
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	commandUI(out, cli).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"client build": runClientBuild,
		"version":      runVersion,
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(cli CLI, _ Dependencies, out io.Writer) int {
	commandUI(out, cli).Info(version.GetVersion())
	return 0
}

// runNoArgs prints usage when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	writeLine(out, "Usage:")
	writeLine(out, fmt.Sprintf("  %s [--config serverless.yml] client build [--packager yarn|npm] [--command <cmd>] [--cwd <dir>] [--verbose]", meta.AppName))
	writeLine(out, "")
	writeLine(out, fmt.Sprintf("Try: %s client build --help", meta.AppName))
	return 0
}
