package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/tracker"
	"scribe/internal/transcription"
)

func newYoutubeCommand(ctx *commandContext) *cobra.Command {
	var languageFlag string
	var modelFlag string
	var exportFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "youtube <url>",
		Short: "Transcribe a YouTube video and wait for its transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The service validates the URL and answers with a detail
			// message, so no validation happens here.
			videoURL := strings.TrimSpace(args[0])

			opts, err := ctx.submitOptions(languageFlag, modelFlag)
			if err != nil {
				return err
			}

			final, err := watchSubmission(cmd, ctx, func(submitCtx context.Context, tr *tracker.Tracker) (*transcription.Job, error) {
				return tr.SubmitYouTube(submitCtx, videoURL, opts)
			})
			if err != nil {
				return err
			}
			return finishSubmission(cmd, ctx, final, exportFlag, outputFlag)
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language hint (default: auto-detect)")
	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Whisper model size to request")
	cmd.Flags().StringVarP(&exportFlag, "export", "e", "", "Also fetch an export: txt, srt, vtt, or json")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the export to this file")

	return cmd
}
