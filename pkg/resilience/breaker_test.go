package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b := NewBreaker(Config{
		Name:             "node-a:9090",
		FailureThreshold: 2,
		OpenTimeout:      200 * time.Millisecond,
	})

	fail := func(context.Context) error { return errors.New("boom") }

	if err := b.Do(context.Background(), fail); err == nil {
		t.Fatalf("expected first failure")
	}
	if err := b.Do(context.Background(), fail); err == nil {
		t.Fatalf("expected second failure")
	}
	if b.State() != StateOpen {
		t.Fatalf("expected open breaker, got %s", b.State())
	}
	if err := b.Do(context.Background(), fail); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestBreakerHalfOpenClosesOnSuccess(t *testing.T) {
	b := NewBreaker(Config{
		Name:             "node-a:9090",
		FailureThreshold: 1,
		SuccessThreshold: 1,
		OpenTimeout:      100 * time.Millisecond,
	})

	_ = b.Do(context.Background(), func(context.Context) error {
		return errors.New("boom")
	})
	time.Sleep(120 * time.Millisecond)

	if err := b.Do(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("expected success in half-open, got %v", err)
	}
	if b.State() != StateClosed {
		t.Fatalf("expected closed breaker, got %s", b.State())
	}
}

func TestBreakerCancellationNotCounted(t *testing.T) {
	b := NewBreaker(Config{
		Name:             "node-a:9090",
		FailureThreshold: 1,
		OpenTimeout:      time.Second,
	})

	_ = b.Do(context.Background(), func(context.Context) error {
		return context.Canceled
	})
	if b.State() != StateClosed {
		t.Fatalf("cancellation must not trip the breaker, got %s", b.State())
	}
}

func TestBreakerOpenErrorCarriesRetryAfter(t *testing.T) {
	b := NewBreaker(Config{
		Name:             "node-b:9090",
		FailureThreshold: 1,
		OpenTimeout:      200 * time.Millisecond,
	})

	_ = b.Do(context.Background(), func(context.Context) error {
		return errors.New("boom")
	})

	err := b.Do(context.Background(), func(context.Context) error { return nil })
	if !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected ErrBreakerOpen, got %v", err)
	}

	var openErr *OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected OpenError, got %T", err)
	}
	if openErr.RetryAfter <= 0 {
		t.Fatalf("expected positive retry_after, got %s", openErr.RetryAfter)
	}
	if openErr.Name != "node-b:9090" {
		t.Fatalf("expected name node-b:9090, got %s", openErr.Name)
	}
}
