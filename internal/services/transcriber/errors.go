package transcriber

import (
	"encoding/json"
	"strings"
)

// SubmissionError reports a rejected or unreachable submission. Detail holds
// the server-provided message when one was present.
type SubmissionError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return "failed to start transcription: " + e.Err.Error()
	}
	return "failed to start transcription"
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// FetchError reports a failed job status, list, or delete request.
type FetchError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return "failed to get transcription: " + e.Err.Error()
	}
	return "failed to get transcription"
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExportError reports a failed export request.
type ExportError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *ExportError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return "failed to export transcription: " + e.Err.Error()
	}
	return "failed to export transcription"
}

func (e *ExportError) Unwrap() error { return e.Err }

// errorDetail extracts the optional "detail" message from an error body.
func errorDetail(payload []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Detail)
}
