package main

import (
	"github.com/spf13/cobra"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a completed transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchExport(cmd, ctx, args[0], formatFlag, outputFlag)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Export format: txt, srt, vtt, or json")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the export to this file")

	return cmd
}
