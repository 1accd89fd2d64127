package prefabs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaBaseURL = "https://paperplane.local/schemas/"

var (
	schemaMu    sync.Mutex
	schemaCache = map[string]*jsonschema.Schema{}
)

// SchemaFor names the schema a prefab file is validated against.
func SchemaFor(filename string) string {
	switch path.Base(cleanPrefabPath(filename)) {
	case "terrain.yaml":
		return "terrain.schema.json"
	case "game.yaml":
		return "game.schema.json"
	default:
		return "entity.schema.json"
	}
}

// Validate checks YAML data against the schema for filename.
func Validate(filename string, data []byte) error {
	schema, err := compileSchema(SchemaFor(filename))
	if err != nil {
		return err
	}

	doc, err := jsonDocument(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSpec, filename, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSpec, filename, err)
	}
	return nil
}

func compileSchema(name string) (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if s, ok := schemaCache[name]; ok {
		return s, nil
	}

	compiler := jsonschema.NewCompiler()
	entries, err := SchemasFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("prefabs: read schemas: %w", err)
	}
	for _, entry := range entries {
		data, err := SchemasFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("prefabs: read schema %s: %w", entry.Name(), err)
		}
		if err := compiler.AddResource(schemaBaseURL+entry.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("prefabs: add schema %s: %w", entry.Name(), err)
		}
	}

	s, err := compiler.Compile(schemaBaseURL + name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile schema %s: %w", name, err)
	}
	schemaCache[name] = s
	return s, nil
}

// jsonDocument turns YAML into the generic JSON shape the validator expects.
func jsonDocument(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
