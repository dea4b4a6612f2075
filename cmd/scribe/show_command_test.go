package main

import (
	"net/http"
	"testing"
)

func TestShowRendersJobDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/transcriptions/abc", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"abc","status":"completed","source_type":"upload","source_name":"talk.mp4","progress":100,"text":"hello world","language":"en"}`))
	})

	configPath := writeTestConfig(t, startService(t, mux))

	out, _, err := runCLI(t, configPath, "show", "abc")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "abc")
	requireContains(t, out, "completed")
	requireContains(t, out, "English (en)")
	requireContains(t, out, "hello world")
}

func TestShowJSONOutput(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/transcriptions/abc", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"abc","status":"transcribing","source_type":"upload","progress":40}`))
	})

	configPath := writeTestConfig(t, startService(t, mux))

	out, _, err := runCLI(t, configPath, "--json", "show", "abc")
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}
	requireContains(t, out, `"status": "transcribing"`)
	requireContains(t, out, `"progress": 40`)
}

func TestShowUnknownJob(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/transcriptions/missing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Transcription not found"}`))
	})

	configPath := writeTestConfig(t, startService(t, mux))

	_, _, err := runCLI(t, configPath, "show", "missing")
	if err == nil {
		t.Fatal("expected error for unknown job")
	}
	requireContains(t, err.Error(), "Transcription not found")
}
