// Package retrier provides a rate-limited retry loop for REST clients:
// calls are paced by an adaptive limiter that backs off when the remote
// side pushes back and recovers while calls succeed.
//
// Example:
//
//	lim := retrier.NewLimiter(4, 1, 8)
//	err := retrier.Do(ctx, lim, retrier.DefaultConfig(), func() error {
//		return client.Push(payload)
//	})
package retrier

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrAttemptsExhausted wraps the last error once every attempt has failed.
var ErrAttemptsExhausted = errors.New("retrier: attempts exhausted")

// Limiter paces calls and adjusts its rate from their outcomes: up after a
// quiet stretch of successes, halved after a throttled failure. Safe for
// concurrent use.
type Limiter struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	min, max rate.Limit
	lastErr  time.Time
}

// NewLimiter returns a limiter starting at initial requests per second,
// adjusting within [min, max].
func NewLimiter(initial, min, max rate.Limit) *Limiter {
	if min < 1 {
		min = 1
	}
	if initial < min {
		initial = min
	}
	if max < initial {
		max = initial
	}
	return &Limiter{
		limiter: rate.NewLimiter(initial, int(initial)),
		min:     min,
		max:     max,
	}
}

// Wait blocks until a token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Success nudges the rate up once failures are at least ten seconds in the past.
func (l *Limiter) Success() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if time.Since(l.lastErr) > 10*time.Second {
		l.setRate(l.limiter.Limit() + 1)
	}
}

// Throttled halves the rate after a failure that indicates pressure.
func (l *Limiter) Throttled() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = time.Now()
	l.setRate(l.limiter.Limit() / 2)
}

// Rate returns the current requests per second.
func (l *Limiter) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return float64(l.limiter.Limit())
}

func (l *Limiter) setRate(r rate.Limit) {
	if r > l.max {
		r = l.max
	}
	if r < l.min {
		r = l.min
	}
	if r != l.limiter.Limit() {
		l.limiter.SetLimit(r)
		l.limiter.SetBurst(int(r))
	}
}

// Config controls the retry loop.
type Config struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	Jitter       bool
	// Retryable decides whether a failure is worth another attempt.
	// nil retries every error.
	Retryable func(error) bool
	// OnRetry is called before each backoff sleep.
	OnRetry func(attempt int, err error)
}

// DefaultConfig returns a conservative retry configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
		Jitter:       true,
	}
}

// Do runs fn until it succeeds, an attempt fails with a non-retryable error,
// ctx is done, or cfg.MaxAttempts is reached. Each attempt waits on lim (when
// non-nil) before running; failures mark the limiter throttled.
func Do(ctx context.Context, lim *Limiter, cfg Config, fn func() error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 2.0
	}

	delay := cfg.InitialDelay
	var last error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				return err
			}
		}

		err := fn()
		if err == nil {
			if lim != nil {
				lim.Success()
			}
			return nil
		}
		last = err

		if cfg.Retryable != nil && !cfg.Retryable(err) {
			return err
		}
		if lim != nil {
			lim.Throttled()
		}
		if attempt == cfg.MaxAttempts {
			break
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}

		sleep := delay
		if cfg.Jitter {
			sleep = addJitter(delay)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, cfg.MaxAttempts, last)
}

// addJitter adds up to 25% of delay to spread out concurrent retries.
func addJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return delay
	}
	return delay + time.Duration(rand.Int63n(int64(delay/4)+1))
}
