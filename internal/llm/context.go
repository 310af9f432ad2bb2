package llm

import "context"

// Purpose labels for the three generation stages. Every request carries
// one; the event log aggregates usage and cost per stage.
const (
	PurposePersona = "persona-gen"
	PurposeData    = "data-gen"
	PurposeCaption = "caption-gen"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
