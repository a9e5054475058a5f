// Where: internal/infra/config/project.go
// What: Project configuration load helpers.
// Why: Read provider.environment and custom.buildClient from the serverless project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/poruru/build-client/internal/domain/clientbuild"
	"gopkg.in/yaml.v3"
)

// DefaultProjectFile is the configuration file read when none is given.
const DefaultProjectFile = "serverless.yml"

// Project is the subset of the project configuration used by the client build.
type Project struct {
	Provider ProviderSection `yaml:"provider"`
	Custom   CustomSection   `yaml:"custom"`

	// Path is the file the project was read from, or "" when it did not exist.
	Path string `yaml:"-"`
}

// ProviderSection holds provider-level settings.
type ProviderSection struct {
	Environment map[string]string

	// Unresolved lists provider.environment keys whose values are not
	// scalars, such as {Ref: Table} or Fn::GetAtt. They are left out of
	// Environment because they only resolve at deploy time.
	Unresolved []string
}

// UnmarshalYAML decodes provider.environment. Scalar values of any type become
// strings. Mapping and sequence values are recorded in Unresolved.
func (s *ProviderSection) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Environment map[string]yaml.Node `yaml:"environment"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Environment == nil {
		return nil
	}

	s.Environment = make(map[string]string, len(raw.Environment))
	for key, value := range raw.Environment {
		scalar, ok := scalarValue(&value)
		if !ok {
			s.Unresolved = append(s.Unresolved, key)
			continue
		}
		s.Environment[key] = scalar
	}
	sort.Strings(s.Unresolved)
	return nil
}

func scalarValue(node *yaml.Node) (string, bool) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return "", false
	}
	if node.ShortTag() == "!!null" {
		return "", true
	}
	return node.Value, true
}

// CustomSection holds plugin-specific settings.
type CustomSection struct {
	BuildClient BuildClientSection `yaml:"buildClient"`
}

// BuildClientSection is custom.buildClient.
type BuildClientSection struct {
	Packager    string            `yaml:"packager"`
	Command     string            `yaml:"command"`
	Cwd         string            `yaml:"cwd"`
	Verbose     bool              `yaml:"verbose"`
	Environment map[string]string `yaml:"environment"`
}

// LoadProject reads and validates the project configuration at path. A file
// that does not exist yields an empty Project so that CLI options and
// defaults still apply.
func LoadProject(path string) (Project, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultProjectFile
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Project{}, nil
		}
		return Project{}, fmt.Errorf("read project config: %w", err)
	}

	project, err := ParseProject(payload)
	if err != nil {
		return Project{}, fmt.Errorf("%s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	project.Path = path
	return project, nil
}

// ParseProject validates custom.buildClient against the embedded schema and
// decodes the document.
func ParseProject(payload []byte) (Project, error) {
	if err := validateBuildClient(payload); err != nil {
		return Project{}, err
	}

	var project Project
	if err := yaml.Unmarshal(payload, &project); err != nil {
		return Project{}, fmt.Errorf("decode project config: %w", err)
	}
	return project, nil
}

// ProviderEnvironment returns provider.environment.
func (p Project) ProviderEnvironment() map[string]string {
	return p.Provider.Environment
}

// BuildConfiguration returns custom.buildClient as build inputs.
func (p Project) BuildConfiguration() clientbuild.BuildConfiguration {
	section := p.Custom.BuildClient
	return clientbuild.BuildConfiguration{
		Packager:    section.Packager,
		Command:     section.Command,
		Cwd:         section.Cwd,
		Verbose:     section.Verbose,
		Environment: section.Environment,
	}
}
