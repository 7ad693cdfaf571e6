package retrier

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDoSucceedsAfterRetries(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), nil, fastConfig(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	fatal := errors.New("bad token")
	cfg := fastConfig()
	cfg.Retryable = func(err error) bool { return !errors.Is(err, fatal) }

	attempts := 0
	err := Do(context.Background(), nil, cfg, func() error {
		attempts++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("Do = %v, want %v", err, fatal)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no retry on non-retryable)", attempts)
	}
	if errors.Is(err, ErrAttemptsExhausted) {
		t.Error("non-retryable failure should not report exhausted attempts")
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	cause := errors.New("still down")
	attempts := 0
	err := Do(context.Background(), nil, fastConfig(), func() error {
		attempts++
		return cause
	})
	if !errors.Is(err, ErrAttemptsExhausted) {
		t.Fatalf("Do = %v, want ErrAttemptsExhausted", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("exhausted error should wrap the last failure, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig()
	cfg.InitialDelay = time.Second // long enough that cancel lands in the backoff sleep
	cfg.OnRetry = func(int, error) { cancel() }

	err := Do(ctx, nil, cfg, func() error { return errors.New("transient") })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Do = %v, want context.Canceled", err)
	}
}

func TestDoReportsRetriesViaCallback(t *testing.T) {
	var seen []int
	cfg := fastConfig()
	cfg.OnRetry = func(attempt int, err error) { seen = append(seen, attempt) }

	_ = Do(context.Background(), nil, cfg, func() error { return errors.New("transient") })
	if len(seen) != 2 {
		t.Fatalf("OnRetry calls = %v, want attempts 1 and 2 (no callback after the last attempt)", seen)
	}
	if seen[0] != 1 || seen[1] != 2 {
		t.Errorf("OnRetry attempts = %v, want [1 2]", seen)
	}
}

func TestLimiterAdjustsWithinBounds(t *testing.T) {
	lim := NewLimiter(4, 1, 8)
	if got := lim.Rate(); got != 4 {
		t.Fatalf("initial rate = %v, want 4", got)
	}

	lim.Throttled()
	if got := lim.Rate(); got != 2 {
		t.Errorf("rate after throttle = %v, want 2", got)
	}
	lim.Throttled()
	lim.Throttled()
	lim.Throttled()
	if got := lim.Rate(); got != 1 {
		t.Errorf("rate should not fall below min, got %v", got)
	}

	// Success within 10s of a failure must not raise the rate.
	lim.Success()
	if got := lim.Rate(); got != 1 {
		t.Errorf("rate after early success = %v, want 1", got)
	}
}

func TestLimiterWaitRespectsContext(t *testing.T) {
	lim := NewLimiter(1, 1, 1)
	// Drain the initial burst token.
	if err := lim.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := lim.Wait(ctx); err == nil {
		t.Fatal("Wait succeeded with exhausted tokens and expiring context, want error")
	}
}
