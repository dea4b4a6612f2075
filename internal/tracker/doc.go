// Package tracker owns the single active transcription job and drives its
// status polling.
//
// A Tracker submits jobs through the injected Service, then polls the job's
// status in a background goroutine until a terminal status arrives. At most
// one poll loop is ever alive per Tracker: a new submission or a Reset
// cancels the previous loop and waits for it to exit before touching state.
// Ticks are serialized, so two fetches for the same job never overlap.
//
// Poll fetch failures are treated as transient and absorbed; the loop keeps
// going indefinitely with the cadence decided by the configured PollPolicy.
// There is deliberately no retry ceiling: a brief service outage must not
// abort a long-running job. Operators who need bounded behaviour can select
// the exponential policy to cap the poll rate while the service is down.
package tracker
