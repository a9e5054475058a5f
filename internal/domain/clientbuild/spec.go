// Where: internal/domain/clientbuild/spec.go
// What: Resolution of the packager, command and working directory to execute.
// Why: Validate everything before a process exists so invalid input has no side effects.
package clientbuild

import (
	"fmt"
	"strings"
)

// BuildSpec is the resolved executable, arguments and working directory of
// one build. It is not modified after construction.
type BuildSpec struct {
	executable string
	args       []string
	cwd        string
}

// NewBuildSpec returns a BuildSpec. An empty cwd means the build inherits the
// current working directory.
func NewBuildSpec(executable string, args []string, cwd string) BuildSpec {
	return BuildSpec{
		executable: executable,
		args:       append([]string(nil), args...),
		cwd:        cwd,
	}
}

func (s BuildSpec) Executable() string {
	return s.executable
}

// Args returns a copy of the argument list.
func (s BuildSpec) Args() []string {
	return append([]string(nil), s.args...)
}

func (s BuildSpec) Cwd() string {
	return s.cwd
}

func (s BuildSpec) String() string {
	return strings.Join(append([]string{s.executable}, s.args...), " ")
}

// ResolveBuildSpec picks packager, command and cwd from options, then
// configuration, then the registry defaults. The packager must be registered.
func ResolveBuildSpec(options BuildOptions, configuration BuildConfiguration, registry Registry) (BuildSpec, error) {
	packager := firstNonEmpty(options.Packager, configuration.Packager, registry.DefaultPackager())
	executable, ok := registry.Executable(packager)
	if !ok {
		return BuildSpec{}, &ValidationError{
			Err: ErrInvalidPackager,
			Message: fmt.Sprintf(
				"invalid packager %q: expected one of %s",
				packager,
				strings.Join(registry.Packagers(), ", "),
			),
		}
	}

	command := firstNonEmpty(options.Command, configuration.Command, registry.DefaultCommand(packager))
	if command == "" {
		return BuildSpec{}, &ValidationError{
			Err:     ErrMissingCommand,
			Message: fmt.Sprintf("no build command configured for packager %q", packager),
		}
	}

	cwd := firstNonEmpty(options.Cwd, configuration.Cwd)
	return NewBuildSpec(executable, Tokenize(command), cwd), nil
}

// Tokenize splits command on single spaces. Quoting is not supported and
// repeated spaces produce empty arguments.
func Tokenize(command string) []string {
	return strings.Split(command, " ")
}
