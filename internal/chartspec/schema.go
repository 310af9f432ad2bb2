package chartspec

import "github.com/dreamness-dnalm/pixmo-docs-custom/internal/llm"

// Schema defines the JSON schema for LLM chart-data responses.
var Schema = &llm.Schema{
	Name:        "chart-data",
	Description: "A complete chart description: kind, titles, and data series",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"kind": map[string]any{
				"type":        "string",
				"enum":        []any{"bar", "grouped_bar", "line", "scatter", "area", "histogram"},
				"description": "The chart kind to render",
			},
			"title": map[string]any{
				"type":        "string",
				"description": "Chart title, in the target language",
			},
			"x_axis_title": map[string]any{
				"type":        "string",
				"description": "X axis title, in the target language. Empty for histogram value axis.",
			},
			"y_axis_title": map[string]any{
				"type":        "string",
				"description": "Y axis title, in the target language",
			},
			"categories": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "X axis category labels for bar and grouped_bar. Empty array for other kinds.",
			},
			"series": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Series display name, in the target language",
						},
						"x": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "number"},
							"description": "X values for line, scatter and area. Empty array otherwise.",
						},
						"y": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "number"},
							"description": "Y values. For bar kinds: one value per category. For histogram: the raw sample values.",
						},
					},
					"required":             []any{"name", "x", "y"},
					"additionalProperties": false,
				},
				"description": "The data series. Histogram takes exactly one series.",
			},
		},
		"required":             []any{"kind", "title", "x_axis_title", "y_axis_title", "categories", "series"},
		"additionalProperties": false,
	},
}
