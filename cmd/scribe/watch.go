package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"scribe/internal/tracker"
	"scribe/internal/transcription"
)

// watchSubmission submits a job through a fresh tracker and renders progress
// until the job reaches a terminal status.
func watchSubmission(cmd *cobra.Command, ctx *commandContext, submit func(context.Context, *tracker.Tracker) (*transcription.Job, error)) (*transcription.Job, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	client, err := ctx.newClient()
	if err != nil {
		return nil, err
	}

	tr := tracker.New(client,
		tracker.WithPollPolicy(tracker.PolicyFromConfig(cfg)),
		tracker.WithLogger(ctx.ensureLogger()),
	)
	defer tr.Close()

	if _, err := submit(cmd.Context(), tr); err != nil {
		return nil, err
	}

	progress := newProgressRenderer(cmd.ErrOrStderr())
	defer progress.finish()

	for {
		select {
		case <-cmd.Context().Done():
			return nil, cmd.Context().Err()
		case snap := <-tr.Updates():
			if snap.Job == nil {
				continue
			}
			progress.update(snap.Job)
			if snap.Job.Status.Terminal() {
				return snap.Job, nil
			}
		}
	}
}

// progressRenderer draws a live bar on terminals and falls back to one line
// per state change otherwise. Progress goes to stderr so transcripts can be
// piped from stdout.
type progressRenderer struct {
	out          io.Writer
	bar          *progressbar.ProgressBar
	lastStatus   transcription.Status
	lastProgress float64
}

func newProgressRenderer(out io.Writer) *progressRenderer {
	r := &progressRenderer{out: out, lastProgress: -1}
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		r.bar = progressbar.NewOptions(100,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription(string(transcription.StatusPending)),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetPredictTime(false),
		)
	}
	return r
}

func (r *progressRenderer) update(job *transcription.Job) {
	if r.bar != nil {
		r.bar.Describe(string(job.Status))
		_ = r.bar.Set(int(job.Progress))
		return
	}
	if job.Status == r.lastStatus && job.Progress == r.lastProgress {
		return
	}
	r.lastStatus = job.Status
	r.lastProgress = job.Progress
	fmt.Fprintf(r.out, "status=%s progress=%s\n", job.Status, formatProgress(job.Progress))
}

func (r *progressRenderer) finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
		fmt.Fprintln(r.out)
	}
}
