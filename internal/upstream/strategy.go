package upstream

import (
	"context"
	"errors"

	"venuegate/internal/shared/apperrors"
)

// LiveOrSynthetic is the single policy point for every upstream-facing
// operation: attempt the live call when the client is in live mode, and on
// failure serve the synthetic fallback instead of the error.
//
// Exceptions, in order:
//   - mock or unconfigured mode skips the live call entirely
//   - an AuthError always propagates (no live call can succeed without it)
//   - ErrNotFound propagates (a clean miss, not an outage)
//   - strict mode wraps the failure in UpstreamError instead of falling back
func LiveOrSynthetic[T any](ctx context.Context, c *Client, op string, live func(ctx context.Context) (T, error), synth func() T) (T, error) {
	var zero T

	if !c.Live() {
		return synth(), nil
	}

	out, err := live(ctx)
	if err == nil {
		return out, nil
	}
	if apperrors.IsAuth(err) || errors.Is(err, apperrors.ErrNotFound) {
		return zero, err
	}
	if c.Strict() {
		return zero, &apperrors.UpstreamError{Op: op, Err: err}
	}

	c.log.LogUpstreamFallback(op, err)
	return synth(), nil
}
