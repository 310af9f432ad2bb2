package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/chartspec"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/llm"
)

const personaSystemPrompt = `You invent realistic scenarios for a synthetic chart dataset.

Rules:
- Invent one persona: a person or organization that would plausibly publish the requested kind of chart. Give their role and context in one or two sentences.
- Invent one concrete topic the persona would chart. Be specific: name products, places, time ranges, units.
- The persona and topic must be written in the target language. Any language and script is acceptable; do not transliterate names into Latin script.
- Do not reuse generic textbook examples (sales of widgets, weather in City A).`

const dataSystemPrompt = `You produce data for a synthetic chart dataset.

Rules:
- Generate one complete chart for the given persona and topic, with the requested chart kind.
- All text fields (title, axis titles, category labels, series names) must be in the target language.
- Values must be plausible for the topic: realistic magnitudes, units consistent with the axis titles, and natural variation. Never emit placeholder values like 1, 2, 3 or round hundreds throughout.
- Use between 3 and 12 categories for bar kinds and between 5 and 30 points per series for line, scatter and area.
- For kinds other than bar and grouped_bar, "categories" must be an empty array. For bar kinds, every series must have exactly one y value per category.
- For histogram, provide exactly one series whose y values are the raw samples (at least 20), and leave x empty.`

const captionSystemPrompt = `You write captions for a synthetic chart dataset.

Rules:
- Write a caption of two to four sentences describing the chart: what it shows, the most notable trend or comparison, and one concrete number from the data.
- Write entirely in the target language.
- Plain markdown is allowed (emphasis, no headings). Do not include code blocks or the raw data.
- Do not invent values that are not in the data.`

// personaSchema constrains the persona stage output.
var personaSchema = &llm.Schema{
	Name:        "chart-persona",
	Description: "A persona and a concrete chart topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"persona": map[string]any{
				"type":        "string",
				"description": "Who publishes this chart, with role and context",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "The specific subject the chart covers",
			},
		},
		"required":             []any{"persona", "topic"},
		"additionalProperties": false,
	},
}

// buildPersonaMessage constructs the user message for the persona stage.
func buildPersonaMessage(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Chart type: %s\n", req.ChartType)
	fmt.Fprintf(&b, "Target language: %s\n", req.Language)
	fmt.Fprintf(&b, "Sample number: %d\n", req.Index+1)
	b.WriteString("\nInvent the persona and topic.")
	return b.String()
}

// buildDataMessage constructs the user message for the data stage.
func buildDataMessage(req Request, kind chartspec.Kind, persona, topic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Chart kind: %s\n", kind)
	fmt.Fprintf(&b, "Target language: %s\n", req.Language)
	fmt.Fprintf(&b, "Persona: %s\n", persona)
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	b.WriteString("\nGenerate the chart data.")
	return b.String()
}

// buildCaptionMessage constructs the user message for the caption stage.
// The chart is passed as JSON so the caption can quote real values.
func buildCaptionMessage(req Request, spec *chartspec.ChartSpec, persona string) string {
	data, _ := json.Marshal(spec)

	var b strings.Builder
	fmt.Fprintf(&b, "Target language: %s\n", req.Language)
	fmt.Fprintf(&b, "Persona: %s\n", persona)
	fmt.Fprintf(&b, "Chart data:\n%s\n", data)
	b.WriteString("\nWrite the caption.")
	return b.String()
}
