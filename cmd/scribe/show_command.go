package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribe/internal/transcription"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the current state of a transcription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.newClient()
			if err != nil {
				return err
			}

			job, err := client.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, job)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderJobDetail(*job))
			if job.Status == transcription.StatusCompleted && job.Text != "" {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), job.Text)
			}
			return nil
		},
	}
}
