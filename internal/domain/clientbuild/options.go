// Where: internal/domain/clientbuild/options.go
// What: Build inputs from the CLI and from project configuration.
// Why: Both sources share one shape so precedence stays a field-by-field fallback.
package clientbuild

// BuildOptions are supplied by the invoking user through CLI flags.
// Empty fields fall back to BuildConfiguration and then to registry defaults.
type BuildOptions struct {
	Packager string
	Command  string
	Cwd      string
	Verbose  bool
}

// BuildConfiguration is read from custom.buildClient in the project configuration.
type BuildConfiguration struct {
	Packager    string
	Command     string
	Cwd         string
	Verbose     bool
	Environment map[string]string
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
