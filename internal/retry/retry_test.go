package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

// recordSleeps replaces sleep for the duration of a test and returns the
// slice the requested waits are appended to.
func recordSleeps(t *testing.T) *[]time.Duration {
	t.Helper()
	var waits []time.Duration
	orig := sleep
	sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	t.Cleanup(func() { sleep = orig })
	return &waits
}

var errDown = errors.New("down")

func TestDo_SucceedsOnFirstAttempt(t *testing.T) {
	waits := recordSleeps(t)
	calls := 0
	err := Do(context.Background(), DefaultConfig(), func(context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if len(*waits) != 0 {
		t.Fatalf("expected no waits, got %v", *waits)
	}
}

func TestDo_DefaultBackoffDoubles(t *testing.T) {
	waits := recordSleeps(t)
	calls := 0
	err := Do(context.Background(), DefaultConfig(), func(context.Context) error {
		calls++
		return errDown
	})
	if !errors.Is(err, errDown) {
		t.Fatalf("expected last error, got %v", err)
	}
	if calls != 4 {
		t.Fatalf("expected 1 call plus 3 retries, got %d calls", calls)
	}
	want := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
	if len(*waits) != len(want) {
		t.Fatalf("expected waits %v, got %v", want, *waits)
	}
	for i := range want {
		if (*waits)[i] != want[i] {
			t.Errorf("wait %d: expected %v, got %v", i, want[i], (*waits)[i])
		}
	}
}

func TestDo_TransientThenSuccess(t *testing.T) {
	recordSleeps(t)
	calls := 0
	v, err := DoValue(context.Background(), DefaultConfig(), func(context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", errDown
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "ok" || calls != 2 {
		t.Fatalf("expected ok after 2 calls, got %q after %d", v, calls)
	}
}

func TestDo_NonRetryableStopsImmediately(t *testing.T) {
	recordSleeps(t)
	cfg := DefaultConfig()
	cfg.Retryable = NotPermanent
	calls := 0
	err := Do(context.Background(), cfg, func(context.Context) error {
		calls++
		return &Permanent{Err: errDown}
	})
	if !errors.Is(err, errDown) {
		t.Fatalf("expected wrapped errDown, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestDo_WaitForOverridesBackoff(t *testing.T) {
	waits := recordSleeps(t)
	cfg := DefaultConfig()
	cfg.WaitFor = func(error) (time.Duration, bool) { return 5 * time.Millisecond, true }
	calls := 0
	_ = Do(context.Background(), cfg, func(context.Context) error {
		calls++
		if calls == 1 {
			return errDown
		}
		return nil
	})
	if len(*waits) != 1 || (*waits)[0] != 5*time.Millisecond {
		t.Fatalf("expected a single 5ms wait, got %v", *waits)
	}
}

func TestBackoff_WaitForCappedByMaxWait(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WaitFor = func(error) (time.Duration, bool) { return time.Hour, true }
	if got := cfg.Backoff(0, errDown); got != 4*time.Second {
		t.Fatalf("expected Retry-After capped at 4s, got %v", got)
	}

	cfg.MaxWait = 0
	if got := cfg.Backoff(0, errDown); got != time.Hour {
		t.Fatalf("expected uncapped wait without MaxWait, got %v", got)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, DefaultConfig(), func(context.Context) error {
		calls++
		return errDown
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no calls on a cancelled context, got %d", calls)
	}
}

func TestDo_CancelledDuringWait(t *testing.T) {
	cfg := Config{MaxAttempts: 3, InitialWait: time.Hour, Multiplier: 2}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Do(ctx, cfg, func(context.Context) error {
			return errDown
		})
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Do did not return after cancellation")
	}
}

func TestBackoff_CappedAndJittered(t *testing.T) {
	cfg := Config{InitialWait: time.Second, MaxWait: 3 * time.Second, Multiplier: 2}
	if got := cfg.Backoff(5, nil); got != 3*time.Second {
		t.Fatalf("expected cap at 3s, got %v", got)
	}

	cfg.Jitter = 0.2
	for range 50 {
		got := cfg.Backoff(0, nil)
		if got < 800*time.Millisecond || got > 1200*time.Millisecond {
			t.Fatalf("jittered wait out of range: %v", got)
		}
	}
}
