package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryClass says how the retry layer treats a failure.
type retryClass int

const (
	// retryNever: configuration or caller errors. Regenerating the same
	// request cannot help (cancelled context, token budget too small).
	retryNever retryClass = iota
	// retryOnce: the model produced output that failed its schema. One
	// regeneration is cheap; more than that is the pipeline's job, which
	// has its own data-attempt budget on top of this layer.
	retryOnce
	// retryAlways: transient transport or endpoint failures.
	retryAlways
)

// RetryProvider retries transient failures with exponential backoff and
// jitter. It sits outside the logging decorator so every attempt is
// recorded as its own event.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidRetried := false

	for attempt := 0; attempt < r.config.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classifyError(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if invalidRetried {
				return nil, err
			}
			invalidRetried = true
		}

		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func classifyError(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return retryNever
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return retryOnce
	}

	// Rate limits, 5xx, and anything else from the network.
	return retryAlways
}

// backoff computes the wait before the next attempt. A rate-limit error
// with a server-provided Retry-After wins over the computed backoff.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.config.MaxWait))

	// ±20% jitter so parallel invocations don't thunder in step.
	wait += wait * 0.2 * (2*rand.Float64() - 1)

	return time.Duration(math.Max(wait, 0))
}
