package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider

	switch cfg.Provider {
	case "openai":
		prof, err := cfg.Resolve()
		if err != nil {
			return nil, err
		}
		base, err = NewOpenAIProvider(prof)
		if err != nil {
			return nil, fmt.Errorf("initializing openai provider: %w", err)
		}
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}

	// Wrap with middleware: caller → retry → logging → timeout → base.
	// The timeout sits inside retry so each attempt gets the full budget.
	timed := withTimeout(base, cfg.Timeout)
	logged := WithLogging(timed, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// timeoutProvider bounds the duration of a single request.
type timeoutProvider struct {
	inner Provider
	d     time.Duration
}

func withTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, d: d}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
