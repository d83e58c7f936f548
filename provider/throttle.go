package provider

import (
	"context"
	"sync"
	"time"

	"github.com/Glanita/traducteur"
)

// Throttle controls the request rate against one upstream using a token
// bucket. It protects the free-tier quotas of the HTTP backends, independent
// of the per-user limits the pipeline enforces.
type Throttle struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// ThrottleConfig configures the upstream throttle.
type ThrottleConfig struct {
	RequestsPerMinute int // maximum requests per minute (default: 60)
	BurstSize         int // maximum burst size (default: same as RPM)
}

// NewThrottle creates a token-bucket throttle.
func NewThrottle(cfg ThrottleConfig) *Throttle {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60
	}

	burst := float64(cfg.BurstSize)
	if burst <= 0 {
		burst = rpm
	}

	return &Throttle{
		tokens:     burst, // start with a full bucket
		maxTokens:  burst,
		refillRate: rpm / 60.0,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (t *Throttle) Wait(ctx context.Context) error {
	for {
		if t.TryAcquire() {
			return nil
		}

		t.mu.Lock()
		waitTime := time.Duration(float64(time.Second) / t.refillRate)
		t.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

// TryAcquire attempts to take a token without blocking.
func (t *Throttle) TryAcquire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// refill adds tokens based on elapsed time (must be called with lock held).
func (t *Throttle) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	t.lastRefill = now

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.maxTokens {
		t.tokens = t.maxTokens
	}
}

// Available returns the current number of available tokens.
func (t *Throttle) Available() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refill()
	return t.tokens
}

// ThrottledProvider wraps a backend with an upstream request throttle.
type ThrottledProvider struct {
	inner    Provider
	throttle *Throttle
}

// NewThrottledProvider creates a throttled provider.
func NewThrottledProvider(inner Provider, cfg ThrottleConfig) *ThrottledProvider {
	return &ThrottledProvider{
		inner:    inner,
		throttle: NewThrottle(cfg),
	}
}

// Name returns the wrapped backend's name.
func (p *ThrottledProvider) Name() string {
	return p.inner.Name()
}

// Throttle returns the underlying throttle for inspection.
func (p *ThrottledProvider) Throttle() *Throttle {
	return p.throttle
}

// Translate waits for a token, then delegates to the wrapped backend.
func (p *ThrottledProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if err := p.throttle.Wait(ctx); err != nil {
		return "", &traducteur.ProviderError{
			Provider: p.Name(),
			Message:  "throttle wait cancelled",
			Cause:    err,
		}
	}
	return p.inner.Translate(ctx, text, sourceLang, targetLang)
}

// Verify ThrottledProvider implements Provider
var _ Provider = (*ThrottledProvider)(nil)
