package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/chartspec"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/llm"
)

// ChartPipelineName is the registry name, kept from the upstream tool so
// existing invocations (-p PlotlyChartPipeline) keep working.
const ChartPipelineName = "PlotlyChartPipeline"

// ChartPipeline generates chart samples in three LLM stages:
// persona/topic, schema-constrained chart data, and caption.
type ChartPipeline struct {
	provider llm.Provider
	config   Config
}

// NewChartPipeline creates the chart pipeline with the given provider.
func NewChartPipeline(provider llm.Provider, cfg Config) *ChartPipeline {
	return &ChartPipeline{provider: provider, config: cfg}
}

func (p *ChartPipeline) Name() string { return ChartPipelineName }

// personaOutput is the raw persona-stage response.
type personaOutput struct {
	Persona string `json:"persona"`
	Topic   string `json:"topic"`
}

// Generate produces a single validated sample.
func (p *ChartPipeline) Generate(ctx context.Context, req Request) (*Sample, error) {
	kind, ok := chartspec.KindFromType(req.ChartType)
	if !ok {
		return nil, fmt.Errorf("unsupported chart type %q (supported: %s)",
			req.ChartType, supportedTypes())
	}

	persona, err := p.generatePersona(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("persona stage: %w", err)
	}

	spec, err := p.generateData(ctx, req, kind, persona)
	if err != nil {
		return nil, fmt.Errorf("data stage: %w", err)
	}

	caption, err := p.generateCaption(ctx, req, spec, persona.Persona)
	if err != nil {
		return nil, fmt.Errorf("caption stage: %w", err)
	}

	return &Sample{
		ID:        uuid.NewString(),
		Pipeline:  p.Name(),
		ChartType: req.ChartType,
		Language:  req.Language,
		Persona:   persona.Persona,
		Topic:     persona.Topic,
		Caption:   caption,
		Chart:     *spec,
		Model:     p.provider.ModelID(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (p *ChartPipeline) generatePersona(ctx context.Context, req Request) (*personaOutput, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposePersona)

	resp, err := p.provider.Generate(ctx, llm.Request{
		System: personaSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPersonaMessage(req)},
		},
		Schema:      personaSchema,
		MaxTokens:   p.config.PersonaMaxTokens,
		Temperature: p.config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var out personaOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse persona response: %w", err)
	}
	return &out, nil
}

// generateData calls the data stage and runs the validator chain,
// regenerating on retryable validation failures.
func (p *ChartPipeline) generateData(ctx context.Context, req Request, kind chartspec.Kind, persona *personaOutput) (*chartspec.ChartSpec, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeData)

	attempts := p.config.MaxDataAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := p.provider.Generate(ctx, llm.Request{
			System: dataSystemPrompt,
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: buildDataMessage(req, kind, persona.Persona, persona.Topic)},
			},
			Schema:      chartspec.Schema,
			MaxTokens:   p.config.DataMaxTokens,
			Temperature: p.config.Temperature,
		})
		if err != nil {
			return nil, err
		}

		var spec chartspec.ChartSpec
		if err := json.Unmarshal(resp.Content, &spec); err != nil {
			return nil, fmt.Errorf("parse chart data response: %w", err)
		}

		if verr := p.validate(&spec, kind); verr != nil {
			lastErr = verr
			if verr.Retryable {
				continue
			}
			return nil, verr
		}
		return &spec, nil
	}

	return nil, fmt.Errorf("chart data failed validation after %d attempts: %w", attempts, lastErr)
}

func (p *ChartPipeline) validate(spec *chartspec.ChartSpec, kind chartspec.Kind) *chartspec.ValidationError {
	for _, v := range p.config.Validators {
		if verr := v.Validate(spec, kind); verr != nil {
			return verr
		}
	}
	return nil
}

func (p *ChartPipeline) generateCaption(ctx context.Context, req Request, spec *chartspec.ChartSpec, persona string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeCaption)

	resp, err := p.provider.Generate(ctx, llm.Request{
		System: captionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCaptionMessage(req, spec, persona)},
		},
		MaxTokens:   p.config.CaptionMaxTokens,
		Temperature: p.config.Temperature,
	})
	if err != nil {
		return "", err
	}

	// No schema on this stage, so truncation is not caught at the
	// provider; a caption cut off mid-sentence must not be exported.
	if resp.StopReason == "max_tokens" {
		return "", &llm.ErrMaxTokensExceeded{Limit: p.config.CaptionMaxTokens, Content: resp.Content}
	}

	caption := strings.TrimSpace(string(resp.Content))
	if caption == "" {
		return "", errors.New("model returned an empty caption")
	}
	return caption, nil
}

func supportedTypes() string {
	kinds := chartspec.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
