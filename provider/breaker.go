package provider

import (
	"context"
	"errors"
	"time"

	"github.com/Glanita/traducteur"
	"github.com/sony/gobreaker"
)

// BreakerConfig configures the circuit breaker around one backend.
type BreakerConfig struct {
	ConsecutiveFailures uint32        // failures before the circuit opens (default: 5)
	OpenTimeout         time.Duration // how long an open circuit rejects calls (default: 30s)
}

// BreakerProvider wraps a backend with a circuit breaker so a dead upstream
// fails fast instead of burning a timeout on every message while it is down.
// While the circuit is open, calls fall straight through to the next backend
// in the chain.
type BreakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps a provider with a circuit breaker.
func NewBreakerProvider(inner Provider, cfg BreakerConfig) *BreakerProvider {
	failures := cfg.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}
	timeout := cfg.OpenTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
	})

	return &BreakerProvider{inner: inner, cb: cb}
}

// Name returns the wrapped backend's name.
func (p *BreakerProvider) Name() string {
	return p.inner.Name()
}

// State returns the current breaker state for inspection.
func (p *BreakerProvider) State() gobreaker.State {
	return p.cb.State()
}

// Translate delegates to the wrapped backend through the breaker.
func (p *BreakerProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	result, err := p.cb.Execute(func() (interface{}, error) {
		return p.inner.Translate(ctx, text, sourceLang, targetLang)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", &traducteur.ProviderError{
				Provider:  p.Name(),
				Message:   "circuit open",
				Cause:     err,
				Retryable: true,
			}
		}
		return "", err
	}
	return result.(string), nil
}

// Verify BreakerProvider implements Provider
var _ Provider = (*BreakerProvider)(nil)
