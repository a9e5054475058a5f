// Where: internal/domain/clientbuild/registry.go
// What: Packager registry with executables and default build commands.
// Why: Keep the set of supported packagers and their defaults in one validated place.
package clientbuild

import (
	"fmt"
	"sort"
)

const (
	PackagerYarn = "yarn"
	PackagerNpm  = "npm"
)

// Registry maps packager identifiers to the executable that runs them and to
// the command used when neither the CLI nor the configuration names one.
type Registry struct {
	executables     map[string]string
	defaultCommands map[string]string
	defaultPackager string
}

// NewRegistry returns a registry after checking that every default command
// and the default packager refer to a registered executable.
func NewRegistry(executables, defaultCommands map[string]string, defaultPackager string) (Registry, error) {
	for id := range defaultCommands {
		if _, ok := executables[id]; !ok {
			return Registry{}, fmt.Errorf("%w: %s", errCommandWithoutPackager, id)
		}
	}
	if _, ok := executables[defaultPackager]; !ok {
		return Registry{}, fmt.Errorf("%w: %s", errUnknownDefaultPackager, defaultPackager)
	}
	return Registry{
		executables:     copyMap(executables),
		defaultCommands: copyMap(defaultCommands),
		defaultPackager: defaultPackager,
	}, nil
}

// DefaultRegistry knows yarn ("build") and npm ("run build"), defaulting to yarn.
func DefaultRegistry() Registry {
	return Registry{
		executables: map[string]string{
			PackagerYarn: "yarn",
			PackagerNpm:  "npm",
		},
		defaultCommands: map[string]string{
			PackagerYarn: "build",
			PackagerNpm:  "run build",
		},
		defaultPackager: PackagerYarn,
	}
}

// Executable returns the executable registered for id.
func (r Registry) Executable(id string) (string, bool) {
	executable, ok := r.executables[id]
	return executable, ok
}

// DefaultCommand returns the default build command for id, or "" if none.
func (r Registry) DefaultCommand(id string) string {
	return r.defaultCommands[id]
}

// DefaultPackager returns the packager used when none is configured.
func (r Registry) DefaultPackager() string {
	return r.defaultPackager
}

// Packagers returns the registered identifiers in sorted order.
func (r Registry) Packagers() []string {
	ids := make([]string, 0, len(r.executables))
	for id := range r.executables {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func copyMap(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for key, value := range values {
		out[key] = value
	}
	return out
}
