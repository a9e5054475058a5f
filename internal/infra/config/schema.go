// Where: internal/infra/config/schema.go
// What: Schema validator for custom.buildClient.
// Why: Reject misspelled keys before they silently fall back to defaults.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const buildClientSchemaURL = "https://build-client.local/schema/build_client.schema.json"

//go:embed schema/build_client.schema.json
var buildClientSchema []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema

	errNotMapping = errors.New("must be a mapping")
)

func validateBuildClient(content []byte) error {
	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	section, ok, err := buildClientSection(document)
	if err != nil || !ok {
		return err
	}

	sch, err := loadSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(section); err != nil {
		return fmt.Errorf("invalid custom.buildClient: %w", err)
	}
	return nil
}

func buildClientSection(document any) (any, bool, error) {
	if document == nil {
		return nil, false, nil
	}
	root, ok := document.(map[string]any)
	if !ok {
		return nil, false, fmt.Errorf("project config %w", errNotMapping)
	}
	rawCustom, ok := root["custom"]
	if !ok || rawCustom == nil {
		return nil, false, nil
	}
	custom, ok := rawCustom.(map[string]any)
	if !ok {
		return nil, false, fmt.Errorf("custom %w", errNotMapping)
	}
	section, ok := custom["buildClient"]
	return section, ok, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(buildClientSchemaURL, bytes.NewReader(buildClientSchema)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(buildClientSchemaURL)
	})
	return compiledSchema, schemaErr
}
