// Package resilience provides the per-node circuit breaker guarding proxy
// RPCs. The breaker is a transport-layer guard and deliberately independent
// of cluster health tracking: it reacts to raw call outcomes, while health
// tracking owns the routing-visible view.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrBreakerOpen = errors.New("circuit breaker is open")

// OpenError carries the concrete delay until the breaker probes again.
type OpenError struct {
	Name       string
	RetryAfter time.Duration
}

func (e *OpenError) Error() string {
	retryAfter := e.RetryAfter
	if retryAfter < 0 {
		retryAfter = 0
	}
	if e.Name == "" {
		return fmt.Sprintf("%v: retry in %s", ErrBreakerOpen, retryAfter)
	}
	return fmt.Sprintf("%v for %s: retry in %s", ErrBreakerOpen, e.Name, retryAfter)
}

func (e *OpenError) Is(target error) bool {
	return target == ErrBreakerOpen
}

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// Config tunes one breaker. Zero values fall back to defaults.
type Config struct {
	Name             string
	FailureThreshold int
	SuccessThreshold int
	OpenTimeout      time.Duration
}

// Breaker is a three-state circuit breaker. Half-open admits a single probe
// call at a time.
type Breaker struct {
	mu sync.Mutex

	cfg Config

	state       State
	failures    int
	successes   int
	openUntil   time.Time
	probeActive bool
}

// NewBreaker creates a closed breaker.
func NewBreaker(cfg Config) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 1
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 10 * time.Second
	}
	return &Breaker{cfg: cfg, state: StateClosed}
}

// State reports the breaker state, refreshing open->half-open on expiry.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshLocked(time.Now())
	return b.state
}

// Do runs fn under the breaker. Caller-driven cancellation is not counted as
// a backend failure.
func (b *Breaker) Do(ctx context.Context, fn func(context.Context) error) error {
	if err := b.admit(); err != nil {
		return err
	}

	err := fn(ctx)

	if errors.Is(err, context.Canceled) {
		b.settleCanceled()
		return err
	}
	if err != nil {
		b.settleFailure()
		return err
	}
	b.settleSuccess()
	return nil
}

func (b *Breaker) admit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refreshLocked(now)

	switch b.state {
	case StateOpen:
		return b.openErrLocked(now)
	case StateHalfOpen:
		if b.probeActive {
			return b.openErrLocked(now)
		}
		b.probeActive = true
		return nil
	default:
		return nil
	}
}

func (b *Breaker) settleSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.probeActive = false
		b.successes++
		if b.successes >= b.cfg.SuccessThreshold {
			b.resetLocked(StateClosed)
		}
		return
	}
	b.failures = 0
}

func (b *Breaker) settleFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.probeActive = false
		b.tripLocked()
		return
	}
	b.failures++
	if b.failures >= b.cfg.FailureThreshold {
		b.tripLocked()
	}
}

func (b *Breaker) settleCanceled() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateHalfOpen {
		b.probeActive = false
	}
}

func (b *Breaker) refreshLocked(now time.Time) {
	if b.state == StateOpen && !now.Before(b.openUntil) {
		b.resetLocked(StateHalfOpen)
	}
}

func (b *Breaker) tripLocked() {
	b.resetLocked(StateOpen)
	b.openUntil = time.Now().Add(b.cfg.OpenTimeout)
}

func (b *Breaker) resetLocked(state State) {
	b.state = state
	b.failures = 0
	b.successes = 0
	b.probeActive = false
}

func (b *Breaker) openErrLocked(now time.Time) error {
	remaining := b.openUntil.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return &OpenError{Name: b.cfg.Name, RetryAfter: remaining}
}
