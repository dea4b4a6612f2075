package transcriber

import (
	"bytes"
	"encoding/json"
	"fmt"

	"scribe/internal/transcription"
)

// SubmitOptions carries the optional form fields accepted at submission.
// Empty or "auto" language means server-side detection; empty model keeps
// the service default.
type SubmitOptions struct {
	Language string
	Model    string
}

// ExportResult is the export payload echoed by the service. Content is the
// raw JSON value: a string for txt/srt/vtt exports and an object for json
// exports.
type ExportResult struct {
	Content json.RawMessage      `json:"content"`
	Format  transcription.Format `json:"format"`
}

// Text returns the export content as plain text. String payloads are
// unquoted; structured payloads are rendered as indented JSON.
func (r ExportResult) Text() (string, error) {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.Content, "", "  "); err != nil {
		return "", fmt.Errorf("decode export content: %w", err)
	}
	return buf.String(), nil
}

// BackendInfo describes service health and capabilities.
type BackendInfo struct {
	Status       string `json:"status"`
	WhisperModel string `json:"whisper_model"`
	Device       string `json:"device"`
	GPUAvailable bool   `json:"gpu_available"`
}
