package transcription

import "strings"

// Status represents the lifecycle state reported by the transcription service.
type Status string

const (
	StatusPending         Status = "pending"
	StatusDownloading     Status = "downloading"
	StatusExtractingAudio Status = "extracting_audio"
	StatusTranscribing    Status = "transcribing"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
	StatusCancelled       Status = "cancelled"
)

var allStatuses = []Status{
	StatusPending,
	StatusDownloading,
	StatusExtractingAudio,
	StatusTranscribing,
	StatusCompleted,
	StatusFailed,
	StatusCancelled,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// Terminal reports whether no further transitions can occur. Once the
// service reports a terminal status the record never changes again.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// SourceType identifies how a job's media was provided.
type SourceType string

const (
	SourceUpload  SourceType = "upload"
	SourceYouTube SourceType = "youtube"
)

// Job is the server's view of one transcription request. Text and Language
// are populated only on completion; Error only on failure.
type Job struct {
	ID         string     `json:"id"`
	Status     Status     `json:"status"`
	SourceType SourceType `json:"source_type"`
	SourceName string     `json:"source_name,omitempty"`
	Progress   float64    `json:"progress"`
	Text       string     `json:"text,omitempty"`
	Language   string     `json:"language,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// Format identifies an export representation of a completed transcript.
type Format string

const (
	FormatTxt  Format = "txt"
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatJSON Format = "json"
)

var allFormats = []Format{FormatTxt, FormatSRT, FormatVTT, FormatJSON}

// AllFormats returns the ordered list of supported export formats.
func AllFormats() []Format {
	cp := make([]Format, len(allFormats))
	copy(cp, allFormats)
	return cp
}

// ParseFormat converts a string into a known export Format.
func ParseFormat(value string) (Format, bool) {
	normalized := Format(strings.ToLower(strings.TrimSpace(value)))
	for _, format := range allFormats {
		if format == normalized {
			return normalized, true
		}
	}
	return "", false
}
