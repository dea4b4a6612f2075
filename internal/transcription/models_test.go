package transcription

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  Status
		ok    bool
	}{
		{"pending", StatusPending, true},
		{"  Transcribing ", StatusTranscribing, true},
		{"EXTRACTING_AUDIO", StatusExtractingAudio, true},
		{"cancelled", StatusCancelled, true},
		{"", "", false},
		{"encoding", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseStatus(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	terminal := map[Status]bool{
		StatusCompleted: true,
		StatusFailed:    true,
		StatusCancelled: true,
	}
	for _, status := range AllStatuses() {
		if got := status.Terminal(); got != terminal[status] {
			t.Errorf("%s.Terminal() = %v, want %v", status, got, terminal[status])
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, format := range AllFormats() {
		got, ok := ParseFormat(string(format))
		if !ok || got != format {
			t.Errorf("ParseFormat(%q) = (%q, %v)", format, got, ok)
		}
	}
	if _, ok := ParseFormat("pdf"); ok {
		t.Error("expected pdf to be rejected")
	}
	if got, ok := ParseFormat(" SRT "); !ok || got != FormatSRT {
		t.Errorf("ParseFormat(\" SRT \") = (%q, %v)", got, ok)
	}
}
