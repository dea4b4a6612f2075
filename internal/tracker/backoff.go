package tracker

import (
	"time"

	"scribe/internal/config"
)

// PollPolicy decides how long to wait before the next status fetch.
// consecutiveFailures counts fetch errors since the last successful poll;
// it is zero on the happy path. Policies shape the cadence only — the
// tracker itself never gives up.
type PollPolicy interface {
	NextDelay(consecutiveFailures int) time.Duration
}

// FixedInterval polls at a constant cadence regardless of failures.
type FixedInterval time.Duration

func (f FixedInterval) NextDelay(int) time.Duration {
	if f <= 0 {
		return time.Second
	}
	return time.Duration(f)
}

// ExponentialBackoff keeps the Initial cadence while the service responds
// and doubles the delay per consecutive failure, capped at Max.
type ExponentialBackoff struct {
	Initial time.Duration
	Max     time.Duration
}

func (b ExponentialBackoff) NextDelay(consecutiveFailures int) time.Duration {
	delay := b.Initial
	if delay <= 0 {
		delay = time.Second
	}
	limit := b.Max
	if limit <= 0 {
		limit = 30 * time.Second
	}
	for i := 0; i < consecutiveFailures; i++ {
		if delay >= limit/2 {
			return limit
		}
		delay *= 2
	}
	if delay > limit {
		return limit
	}
	return delay
}

// PolicyFromConfig builds the configured poll policy.
func PolicyFromConfig(cfg *config.Config) PollPolicy {
	if cfg == nil {
		return FixedInterval(time.Second)
	}
	interval := time.Duration(cfg.Polling.Interval) * time.Second
	if cfg.Polling.Strategy == config.PollStrategyExponential {
		return ExponentialBackoff{
			Initial: interval,
			Max:     time.Duration(cfg.Polling.MaxInterval) * time.Second,
		}
	}
	return FixedInterval(interval)
}
