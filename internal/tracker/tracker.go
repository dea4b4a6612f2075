package tracker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"scribe/internal/logging"
	"scribe/internal/services/transcriber"
	"scribe/internal/transcription"
)

// Service is the remote boundary the tracker drives. *transcriber.Client
// satisfies it; tests substitute a stub.
type Service interface {
	SubmitFile(ctx context.Context, filename string, payload io.Reader, opts transcriber.SubmitOptions) (*transcription.Job, error)
	SubmitYouTube(ctx context.Context, url string, opts transcriber.SubmitOptions) (*transcription.Job, error)
	Status(ctx context.Context, id string) (*transcription.Job, error)
	Export(ctx context.Context, id string, format transcription.Format) (*transcriber.ExportResult, error)
}

// Snapshot is the tracker state exposed to presentation code. Job is a copy;
// mutating it has no effect on the tracker.
type Snapshot struct {
	Job        *transcription.Job
	Submitting bool
	LastError  string
}

// Tracker owns the single active transcription job and its poll loop.
type Tracker struct {
	service Service
	policy  PollPolicy
	logger  *slog.Logger
	updates chan Snapshot

	mu         sync.Mutex
	job        *transcription.Job
	submitting bool
	lastError  string
	cancel     context.CancelFunc
	pollDone   chan struct{}
}

// Option customizes the tracker.
type Option func(*Tracker)

// WithPollPolicy overrides the default fixed one-second cadence.
func WithPollPolicy(policy PollPolicy) Option {
	return func(t *Tracker) {
		if policy != nil {
			t.policy = policy
		}
	}
}

// WithLogger attaches a logger for poll diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logging.NewComponentLogger(logger, "tracker")
		}
	}
}

// New constructs a tracker around the given service.
func New(service Service, opts ...Option) *Tracker {
	t := &Tracker{
		service: service,
		policy:  FixedInterval(time.Second),
		logger:  logging.NewNop(),
		updates: make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SubmitFile submits an upload and starts polling the resulting job.
func (t *Tracker) SubmitFile(ctx context.Context, filename string, payload io.Reader, opts transcriber.SubmitOptions) (*transcription.Job, error) {
	return t.submit(ctx, func(ctx context.Context) (*transcription.Job, error) {
		return t.service.SubmitFile(ctx, filename, payload, opts)
	})
}

// SubmitYouTube submits a YouTube URL and starts polling the resulting job.
func (t *Tracker) SubmitYouTube(ctx context.Context, url string, opts transcriber.SubmitOptions) (*transcription.Job, error) {
	return t.submit(ctx, func(ctx context.Context) (*transcription.Job, error) {
		return t.service.SubmitYouTube(ctx, url, opts)
	})
}

func (t *Tracker) submit(ctx context.Context, call func(context.Context) (*transcription.Job, error)) (*transcription.Job, error) {
	// The previous loop must be fully stopped before the new submission's
	// network call is issued, so stale snapshots can never race the new job.
	t.stopPolling()

	t.mu.Lock()
	t.submitting = true
	t.lastError = ""
	t.mu.Unlock()
	t.publish()

	defer func() {
		t.mu.Lock()
		t.submitting = false
		t.mu.Unlock()
		t.publish()
	}()

	job, err := call(ctx)
	if err != nil {
		t.mu.Lock()
		t.job = nil
		t.lastError = err.Error()
		t.mu.Unlock()
		return nil, err
	}

	t.mu.Lock()
	t.job = job
	if !job.Status.Terminal() {
		pollCtx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		t.cancel = cancel
		t.pollDone = done
		go t.poll(pollCtx, job.ID, done)
	}
	t.mu.Unlock()

	return job, nil
}

// poll fetches the job's status until a terminal status arrives or the loop
// is cancelled. Ticks are serialized: the next wait starts only after the
// current fetch resolves.
func (t *Tracker) poll(ctx context.Context, id string, done chan struct{}) {
	defer close(done)
	logger := t.logger.With(logging.String(logging.FieldJobID, id))

	failures := 0
	for {
		timer := time.NewTimer(t.policy.NextDelay(failures))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		job, err := t.service.Status(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// Transient by policy: a blip must not abort the job.
			failures++
			logger.Debug("status poll failed; will retry",
				logging.Error(err),
				logging.Int("consecutive_failures", failures),
			)
			continue
		}
		failures = 0

		t.mu.Lock()
		if t.job == nil || t.job.ID != id {
			t.mu.Unlock()
			return
		}
		t.job = job
		t.mu.Unlock()
		t.publish()

		if job.Status.Terminal() {
			logger.Debug("job reached terminal status", logging.String("status", string(job.Status)))
			return
		}
	}
}

// stopPolling cancels the active poll loop, if any, and waits for it to exit.
func (t *Tracker) stopPolling() {
	t.mu.Lock()
	cancel := t.cancel
	done := t.pollDone
	t.cancel = nil
	t.pollDone = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Reset cancels any active poll loop and clears all state. Idempotent.
func (t *Tracker) Reset() {
	t.stopPolling()

	t.mu.Lock()
	t.job = nil
	t.lastError = ""
	t.mu.Unlock()
	t.publish()
}

// Close stops the poll loop. The tracker keeps its last snapshot.
func (t *Tracker) Close() {
	t.stopPolling()
}

// Export fetches the active job's transcript in the requested format. The
// job's status is not checked here; the service answers authoritatively.
func (t *Tracker) Export(ctx context.Context, format transcription.Format) (*transcriber.ExportResult, error) {
	t.mu.Lock()
	job := t.job
	t.mu.Unlock()
	if job == nil {
		return nil, errors.New("no active transcription")
	}
	return t.service.Export(ctx, job.ID, format)
}

// Snapshot returns the current tracker state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Updates returns a latest-wins channel of state snapshots. The channel is
// never closed; consumers select against their own cancellation.
func (t *Tracker) Updates() <-chan Snapshot {
	return t.updates
}

func (t *Tracker) snapshotLocked() Snapshot {
	snap := Snapshot{Submitting: t.submitting, LastError: t.lastError}
	if t.job != nil {
		job := *t.job
		snap.Job = &job
	}
	return snap
}

// publish replaces any pending snapshot with the current one.
func (t *Tracker) publish() {
	t.mu.Lock()
	snap := t.snapshotLocked()
	t.mu.Unlock()

	for {
		select {
		case t.updates <- snap:
			return
		default:
		}
		select {
		case <-t.updates:
		default:
		}
	}
}
