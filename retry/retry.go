// Package retry implements the backoff discipline wrapped around single adapter operations.
package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/key"
	"github.com/spf13/viper"
)

// Policy decides whether a classified failure is retried, how long to wait
// between attempts, and when the aggregate budget forbids another attempt.
// It is source-agnostic: it wraps whichever operation it is given.
type Policy struct {
	attempts  int
	baseDelay time.Duration
	budget    time.Duration

	sleep  func(context.Context, time.Duration) error
	jitter func() float64
	now    func() time.Time
}

// Option customizes a Policy. The time-related hooks exist so tests can
// simulate elapsed time and assert attempt counts deterministically.
type Option func(*Policy)

// WithSleep replaces the context-aware delay function.
func WithSleep(sleep func(context.Context, time.Duration) error) Option {
	return func(p *Policy) { p.sleep = sleep }
}

// WithJitter replaces the randomized jitter source. The function must return
// values in [0, 1).
func WithJitter(jitter func() float64) Option {
	return func(p *Policy) { p.jitter = jitter }
}

// WithClock replaces the wall clock used for budget accounting.
func WithClock(now func() time.Time) Option {
	return func(p *Policy) { p.now = now }
}

// New constructs a Policy with the given retry ceiling, backoff base delay and
// aggregate time budget. The operation always runs at least once, even when a
// misconfigured ceiling asks for zero attempts.
func New(attempts int, baseDelay, budget time.Duration, opts ...Option) Policy {
	p := Policy{
		attempts:  max(attempts, 1),
		baseDelay: baseDelay,
		budget:    budget,
		sleep:     sleepContext,
		jitter:    rand.Float64,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// FromConfig constructs a Policy from the global configuration.
func FromConfig(opts ...Option) Policy {
	return New(
		viper.GetInt(key.HTTPRetryAttempts),
		time.Duration(viper.GetInt(key.HTTPRetryBaseDelayMs))*time.Millisecond,
		time.Duration(viper.GetInt(key.HTTPTimeoutSec))*time.Second,
		opts...,
	)
}

// Do runs op until it succeeds, fails terminally, exhausts the attempt
// ceiling, or would overrun the aggregate budget. The error returned is always
// the most recent attempt's classified failure.
func (p Policy) Do(ctx context.Context, op func(context.Context) error) error {
	start := p.now()

	var last error
	for attempt := 0; attempt < p.attempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		last = err

		if !fault.As(err).Retryable() {
			return err
		}

		if attempt == p.attempts-1 {
			break
		}

		delay := p.delay(attempt)
		if p.now().Sub(start)+delay >= p.budget {
			break
		}

		if err := p.sleep(ctx, delay); err != nil {
			return fault.FromTransport(fault.As(last).Source, err)
		}
	}

	return last
}

// delay computes the exponential backoff for the given zero-based attempt,
// plus randomized jitter proportional to the base delay.
func (p Policy) delay(attempt int) time.Duration {
	backoff := p.baseDelay << attempt
	return backoff + time.Duration(p.jitter()*0.4*float64(p.baseDelay))
}

// sleepContext waits for the duration unless the context is cancelled first.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
