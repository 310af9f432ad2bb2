package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compiled schemas by name. The tool has exactly
// two (persona and chart-data) and both are static, so the cache never
// needs invalidation.
var compiledSchemas sync.Map // map[string]*jsonschema.Schema

// validateResponse checks raw model output against the stage's Schema.
// A nil schema (the caption stage) passes everything. Failures come back
// as *ErrInvalidResponse carrying the schema name and the rejected
// content, which the retry layer treats as worth one regeneration.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Schema:  schema.Name,
			Content: raw,
			Err:     fmt.Errorf("not valid JSON: %w", err),
		}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Schema:  schema.Name,
			Content: raw,
			Err:     err,
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Schema:  schema.Name,
			Content: raw,
			Err:     err,
		}
	}

	return nil
}

// compileSchema returns the cached compiled form of a stage schema,
// compiling it on first use.
func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	value, err := schemaValue(schema.Definition)
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, value); err != nil {
		return nil, fmt.Errorf("register schema %q: %w", schema.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	compiledSchemas.Store(schema.Name, compiled)
	return compiled, nil
}

// schemaValue round-trips the definition through JSON because the
// jsonschema compiler wants a parsed value, not Go maps with typed
// slices inside.
func schemaValue(definition map[string]any) (any, error) {
	raw, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}
	return value, nil
}
