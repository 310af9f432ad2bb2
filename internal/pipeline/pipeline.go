// Package pipeline contains the sample generators and the registry that
// maps pipeline names from the --pipeline flag to implementations.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/chartspec"
)

// Request holds the per-sample generation parameters from the CLI.
type Request struct {
	// ChartType is the requested chart type, free text (e.g. "bar chart").
	ChartType string

	// Language is the generation language for all LLM-produced text.
	Language string

	// Index is the zero-based ordinal of this sample within the run.
	// Included in prompts so repeated calls drift toward distinct topics.
	Index int
}

// Sample is one generated unit: chart data plus the text that describes it.
// Lifecycle is create → export → end.
type Sample struct {
	ID        string              `json:"id"`
	Pipeline  string              `json:"pipeline"`
	ChartType string              `json:"chart_type"`
	Language  string              `json:"language"`
	Persona   string              `json:"persona"`
	Topic     string              `json:"topic"`
	Caption   string              `json:"caption"`
	Chart     chartspec.ChartSpec `json:"chart"`
	Model     string              `json:"model"`
	CreatedAt time.Time           `json:"created_at"`
}

// Pipeline produces samples of one category of synthetic chart data.
type Pipeline interface {
	// Name returns the registry name, e.g. "PlotlyChartPipeline".
	Name() string

	// Generate produces a single validated sample.
	Generate(ctx context.Context, req Request) (*Sample, error)
}

// Registry maps pipeline names to implementations.
type Registry struct {
	pipelines map[string]Pipeline
}

// NewRegistry creates an empty pipeline registry.
func NewRegistry() *Registry {
	return &Registry{pipelines: make(map[string]Pipeline)}
}

// Register adds a pipeline under its own name.
func (r *Registry) Register(p Pipeline) {
	r.pipelines[p.Name()] = p
}

// Get returns the pipeline registered under name, or an error naming the
// known pipelines.
func (r *Registry) Get(name string) (Pipeline, error) {
	if p, ok := r.pipelines[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown pipeline %q (available: %s)",
		name, strings.Join(r.Names(), ", "))
}

// Names returns the registered pipeline names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
