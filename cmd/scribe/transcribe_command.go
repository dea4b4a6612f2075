package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/fileutil"
	"scribe/internal/language"
	"scribe/internal/services/transcriber"
	"scribe/internal/tracker"
	"scribe/internal/transcription"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var languageFlag string
	var modelFlag string
	var exportFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "transcribe <file>",
		Short: "Upload a media file and wait for its transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := fileutil.ResolveMediaFile(args[0])
			if err != nil {
				return err
			}

			file, err := os.Open(absPath)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer file.Close()

			opts, err := ctx.submitOptions(languageFlag, modelFlag)
			if err != nil {
				return err
			}

			final, err := watchSubmission(cmd, ctx, func(submitCtx context.Context, tr *tracker.Tracker) (*transcription.Job, error) {
				return tr.SubmitFile(submitCtx, absPath, file, opts)
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

func (c *commandContext) submitOptions(languageFlag, modelFlag string) (transcriber.SubmitOptions, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return transcriber.SubmitOptions{}, err
	}
	opts := transcriber.SubmitOptions{
		Language: cfg.Defaults.Language,
		Model:    cfg.Defaults.Model,
	}
	if strings.TrimSpace(languageFlag) != "" {
		opts.Language = strings.TrimSpace(languageFlag)
	}
	opts.Language = language.Normalize(opts.Language)
	if strings.TrimSpace(modelFlag) != "" {
		opts.Model = strings.TrimSpace(modelFlag)
	}
	return opts, nil
}

// finishSubmission reports the terminal job and optionally fetches an export.
func finishSubmission(cmd *cobra.Command, ctx *commandContext, job *transcription.Job, exportFlag, outputFlag string) error {
	switch job.Status {
	case transcription.StatusFailed:
		if job.Error != "" {
			return fmt.Errorf("transcription failed: %s", job.Error)
		}
		return errors.New("transcription failed")
	case transcription.StatusCancelled:
		return errors.New("transcription was cancelled")
	}

	if ctx.jsonOutput() {
		if err := writeJSON(cmd, job); err != nil {
			return err
		}
	} else {
		if job.Language != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Detected language: %s\n", language.DisplayName(job.Language))
		}
		fmt.Fprintln(cmd.OutOrStdout(), job.Text)
	}

	if exportFlag == "" && outputFlag == "" {
		return nil
	}
	return fetchExport(cmd, ctx, job.ID, exportFlag, outputFlag)
}

func fetchExport(cmd *cobra.Command, ctx *commandContext, id, formatValue, outputPath string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if formatValue == "" {
		formatValue = cfg.Defaults.ExportFormat
	}
	format, ok := transcription.ParseFormat(formatValue)
	if !ok {
		return fmt.Errorf("unknown export format %q", formatValue)
	}

	client, err := ctx.newClient()
	if err != nil {
		return err
	}
	result, err := client.Export(cmd.Context(), id, format)
	if err != nil {
		return err
	}
	text, err := result.Text()
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Export written to %s\n", outputPath)
	return nil
}
