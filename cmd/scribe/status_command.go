package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the transcription service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.newClient()
			if err != nil {
				return err
			}

			info, err := client.Info(cmd.Context())
			if err != nil {
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]any{"available": false, "error": err.Error()})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Service: unavailable")
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, info)
			}

			gpu := "no"
			if info.GPUAvailable {
				gpu = "yes"
			}
			rows := [][]string{
				{"Service", info.Status},
				{"Model", info.WhisperModel},
				{"Device", info.Device},
				{"GPU", gpu},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}
}
