package main

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"scribe/internal/language"
	"scribe/internal/transcription"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range header {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

func formatProgress(progress float64) string {
	return fmt.Sprintf("%.0f%%", progress)
}

var jobListHeaders = []string{"ID", "Source", "Name", "Status", "Progress", "Language"}

func jobListRow(job transcription.Job) []string {
	return []string{
		job.ID,
		string(job.SourceType),
		job.SourceName,
		string(job.Status),
		formatProgress(job.Progress),
		language.DisplayName(job.Language),
	}
}

// renderJobDetail renders one job as a vertical field/value table.
func renderJobDetail(job transcription.Job) string {
	rows := [][]string{
		{"ID", job.ID},
		{"Source", string(job.SourceType)},
		{"Name", job.SourceName},
		{"Status", string(job.Status)},
		{"Progress", formatProgress(job.Progress)},
	}
	if job.Language != "" {
		rows = append(rows, []string{"Language", language.DisplayName(job.Language)})
	}
	if job.Error != "" {
		rows = append(rows, []string{"Error", job.Error})
	}
	return renderTable([]string{"Field", "Value"}, rows)
}
