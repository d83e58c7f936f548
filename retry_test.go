package traducteur

import (
	"context"
	"testing"
	"time"
)

func TestWithRetry_SucceedsFirstTry(t *testing.T) {
	calls := 0
	result, err := WithRetry(context.Background(), DefaultRetryConfig(), func() (string, error) {
		calls++
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("WithRetry failed: %v", err)
	}
	if result != "ok" || calls != 1 {
		t.Errorf("got (%q, %d calls), want (ok, 1 call)", result, calls)
	}
}

func TestWithRetry_RetriesRetryable(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond}

	calls := 0
	result, err := WithRetry(context.Background(), cfg, func() (string, error) {
		calls++
		if calls < 3 {
			return "", &ProviderError{Provider: "mock", Message: "transient", Retryable: true}
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("WithRetry failed: %v", err)
	}
	if result != "ok" || calls != 3 {
		t.Errorf("got (%q, %d calls), want (ok, 3 calls)", result, calls)
	}
}

func TestWithRetry_StopsOnPermanentError(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond}

	calls := 0
	_, err := WithRetry(context.Background(), cfg, func() (string, error) {
		calls++
		return "", &ProviderError{Provider: "mock", Message: "bad pair", Retryable: false}
	})

	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("permanent error retried %d times, want 1 call", calls)
	}
}

func TestWithRetry_ExhaustsRetries(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond}

	calls := 0
	_, err := WithRetry(context.Background(), cfg, func() (string, error) {
		calls++
		return "", &ProviderError{Provider: "mock", Message: "transient", Retryable: true}
	})

	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != 3 {
		t.Errorf("got %d calls, want 3 (initial + 2 retries)", calls)
	}
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(ctx, DefaultRetryConfig(), func() (string, error) {
		t.Fatal("function should not run with cancelled context")
		return "", nil
	})

	if err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
