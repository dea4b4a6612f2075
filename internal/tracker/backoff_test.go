package tracker

import (
	"testing"
	"time"

	"scribe/internal/config"
)

func TestFixedIntervalIgnoresFailures(t *testing.T) {
	policy := FixedInterval(3 * time.Second)
	for _, failures := range []int{0, 1, 100} {
		if got := policy.NextDelay(failures); got != 3*time.Second {
			t.Errorf("NextDelay(%d) = %s, want 3s", failures, got)
		}
	}
	if got := FixedInterval(0).NextDelay(0); got != time.Second {
		t.Errorf("zero interval should fall back to 1s, got %s", got)
	}
}

func TestExponentialBackoffGrowth(t *testing.T) {
	policy := ExponentialBackoff{Initial: time.Second, Max: 8 * time.Second}
	cases := []struct {
		failures int
		want     time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{10, 8 * time.Second},
	}
	for _, tc := range cases {
		if got := policy.NextDelay(tc.failures); got != tc.want {
			t.Errorf("NextDelay(%d) = %s, want %s", tc.failures, got, tc.want)
		}
	}
}

func TestExponentialBackoffDefaults(t *testing.T) {
	policy := ExponentialBackoff{}
	if got := policy.NextDelay(0); got != time.Second {
		t.Errorf("NextDelay(0) = %s, want 1s", got)
	}
	if got := policy.NextDelay(50); got != 30*time.Second {
		t.Errorf("NextDelay(50) = %s, want 30s cap", got)
	}
}

func TestPolicyFromConfig(t *testing.T) {
	cfg := config.Default()
	if _, ok := PolicyFromConfig(&cfg).(FixedInterval); !ok {
		t.Errorf("default strategy should be fixed, got %T", PolicyFromConfig(&cfg))
	}

	cfg.Polling.Strategy = config.PollStrategyExponential
	cfg.Polling.Interval = 2
	cfg.Polling.MaxInterval = 10
	policy, ok := PolicyFromConfig(&cfg).(ExponentialBackoff)
	if !ok {
		t.Fatalf("expected ExponentialBackoff, got %T", PolicyFromConfig(&cfg))
	}
	if policy.Initial != 2*time.Second || policy.Max != 10*time.Second {
		t.Errorf("unexpected policy: %+v", policy)
	}

	if _, ok := PolicyFromConfig(nil).(FixedInterval); !ok {
		t.Error("nil config should yield the fixed default")
	}
}
