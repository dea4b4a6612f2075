package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "info", Format: "console"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = NewComponentLogger(logger, "tracker")
	logger.Info("poll started", String("job_id", "abc"), Int("attempt", 1))

	line := buf.String()
	if !strings.Contains(line, "INFO tracker: poll started") {
		t.Errorf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "job_id=abc") || !strings.Contains(line, "attempt=1") {
		t.Errorf("missing attrs in line: %q", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("submission rejected", Error(errors.New("invalid url")))

	if !strings.Contains(buf.String(), `error="invalid url"`) {
		t.Errorf("expected quoted error value, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Debug("also hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}

	logger.Error("shown")
	if !strings.Contains(buf.String(), "ERROR shown") {
		t.Errorf("expected error line, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Format: "json"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("request sent", String(FieldCorrelationID, "rid-1"))

	line := buf.String()
	if !strings.Contains(line, `"msg":"request sent"`) || !strings.Contains(line, `"correlation_id":"rid-1"`) {
		t.Errorf("unexpected json line: %q", line)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Info("ignored")
	if logger.Enabled(t.Context(), 0) {
		t.Fatal("nop logger should report disabled")
	}
}
