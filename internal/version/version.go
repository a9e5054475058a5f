// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (module version or Git commit) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the released module version when the binary was
// installed from a tagged module, otherwise the short VCS revision with a
// "(dirty)" suffix for modified trees. It returns "dev" when neither is known.
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
