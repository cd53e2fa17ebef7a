package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceName = "result.json"

// Checker validates raw model output against the advisory result schema.
type Checker struct {
	schema *jsonschema.Schema
}

// NewChecker compiles schemaMap once so Check can be called per request.
func NewChecker(schemaMap map[string]any) (*Checker, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceName, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	s, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Checker{schema: s}, nil
}

// Check returns nil when raw is a JSON document matching the schema.
func (c *Checker) Check(raw string) error {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	if err := c.schema.Validate(v); err != nil {
		return fmt.Errorf("result does not match schema: %w", err)
	}
	return nil
}
