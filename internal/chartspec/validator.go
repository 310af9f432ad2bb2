package chartspec

import "fmt"

// Validator checks a parsed ChartSpec before rendering.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "renderable".
	Name() string

	// Validate checks the spec and returns nil if it passes.
	// requested is the kind resolved from the --type flag, so validators
	// can reject a spec that ignored the requested chart type.
	Validate(s *ChartSpec, requested Kind) *ValidationError
}

// ValidationError describes why a chart spec failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
