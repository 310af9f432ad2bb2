package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// seriesSchema is a cut-down version of the chart-data schema: enough
// shape (enum kind, required fields, nested series array) to exercise
// every failure path.
func seriesSchema() *Schema {
	return &Schema{
		Name:        "test-chart-data",
		Description: "A chart description",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"kind":  map[string]any{"type": "string", "enum": []any{"bar", "line"}},
				"title": map[string]any{"type": "string"},
				"series": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{"type": "string"},
							"y":    map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
						},
						"required": []any{"name", "y"},
					},
				},
			},
			"required": []any{"kind", "title", "series"},
		},
	}
}

func TestValidateResponse_ValidChartData(t *testing.T) {
	raw := json.RawMessage(`{"kind":"bar","title":"Visitors per Month","series":[{"name":"2024","y":[120,95,140]}]}`)
	if err := validateResponse(seriesSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"kind":"bar","title":"No Series"}`)
	err := validateResponse(seriesSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if invErr.Schema != "test-chart-data" {
		t.Errorf("schema = %q, want test-chart-data", invErr.Schema)
	}
}

func TestValidateResponse_WrongValueType(t *testing.T) {
	raw := json.RawMessage(`{"kind":"bar","title":"Bad Values","series":[{"name":"2024","y":["tall","short"]}]}`)
	err := validateResponse(seriesSchema(), raw)
	if err == nil {
		t.Fatal("expected error for non-numeric y values")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_KindNotInEnum(t *testing.T) {
	raw := json.RawMessage(`{"kind":"pie","title":"Unsupported","series":[{"name":"2024","y":[1]}]}`)
	err := validateResponse(seriesSchema(), raw)
	if err == nil {
		t.Fatal("expected error for kind outside the enum")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"kind":"bar","title":"Cut off mid`)
	err := validateResponse(seriesSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if string(invErr.Content) != string(raw) {
		t.Errorf("rejected content not preserved: %s", invErr.Content)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(seriesSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchemaPassesFreeText(t *testing.T) {
	// The caption stage has no schema; any text is accepted here.
	raw := json.RawMessage(`The chart shows visitors rising through spring.`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_CachedSchemaReused(t *testing.T) {
	schema := seriesSchema()
	raw := json.RawMessage(`{"kind":"line","title":"Twice","series":[{"name":"a","y":[1,2]}]}`)
	for i := 0; i < 2; i++ {
		if err := validateResponse(schema, raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	if _, ok := compiledSchemas.Load(schema.Name); !ok {
		t.Error("compiled schema not cached")
	}
}
