package language

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 2-letter codes pass through
		{"en", "en"},
		{"EN", "en"},
		{"es", "es"},
		// 3-letter codes convert
		{"eng", "en"},
		{"deu", "de"},
		{"jpn", "ja"},
		// full names convert
		{"english", "en"},
		{"German", "de"},
		{"PORTUGUESE", "pt"},
		// auto-detect markers pass through
		{"", ""},
		{"auto", "auto"},
		{"  auto  ", "auto"},
		// unresolvable hints pass through for the service to reject
		{"not a language", "not a language"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English (en)"},
		{"de", "German (de)"},
		{"", ""},
		{"not a tag", "not a tag"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.input); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
