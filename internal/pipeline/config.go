package pipeline

import "github.com/dreamness-dnalm/pixmo-docs-custom/internal/chartspec"

// Config controls the behavior of the chart pipeline.
type Config struct {
	// Validators is the ordered list of validators run on every generated
	// chart spec. They execute in order; the first failure stops the chain.
	Validators []chartspec.Validator

	// MaxDataAttempts bounds regeneration when the chart data fails a
	// retryable validator. The persona and caption stages are not retried
	// here; transient API errors are handled by the provider middleware.
	MaxDataAttempts int

	// PersonaMaxTokens, DataMaxTokens and CaptionMaxTokens are the token
	// budgets per stage. Data carries the series arrays and needs the most.
	PersonaMaxTokens int
	DataMaxTokens    int
	CaptionMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Synthetic
	// data wants variety, so the default is high.
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators:       chartspec.DefaultValidators(),
		MaxDataAttempts:  3,
		PersonaMaxTokens: 256,
		DataMaxTokens:    2048,
		CaptionMaxTokens: 512,
		Temperature:      0.9,
	}
}
