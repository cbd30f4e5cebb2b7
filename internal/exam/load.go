package exam

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// tableSchema is the JSON schema a custom section-table file must satisfy.
var tableSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"sections": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "string",
						"pattern": "^[a-z][a-z0-9_]*$",
					},
					"name": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"weight": map[string]any{
						"type":             "number",
						"exclusiveMinimum": 0,
						"maximum":          1,
					},
				},
				"required":             []any{"id", "name", "weight"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"sections"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledTableSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw Go literals. Marshal then unmarshal to normalize numbers.
		defBytes, err := json.Marshal(tableSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://section-table.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// LoadTable reads a custom section table from a JSON file, validates it
// against the table schema, and enforces the weight-sum invariant.
func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read section table: %w", err)
	}
	return ParseTable(raw)
}

// ParseTable validates and decodes a JSON section table.
func ParseTable(raw []byte) (*Table, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("section table: invalid JSON: %w", err)
	}

	schema, err := compiledTableSchema()
	if err != nil {
		return nil, fmt.Errorf("compile section-table schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("section table: schema validation failed: %w", err)
	}

	var doc struct {
		Sections []Section `json:"sections"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("section table: decode: %w", err)
	}
	return NewTable(doc.Sections)
}
