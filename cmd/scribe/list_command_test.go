package main

import (
	"net/http"
	"testing"
)

func TestListRendersTable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/transcriptions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"one","status":"completed","source_type":"upload","source_name":"talk.mp4","progress":100,"language":"en"},
			{"id":"two","status":"downloading","source_type":"youtube","source_name":"clip","progress":10}
		]`))
	})

	configPath := writeTestConfig(t, startService(t, mux))

	out, _, err := runCLI(t, configPath, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "one")
	requireContains(t, out, "talk.mp4")
	requireContains(t, out, "downloading")
	requireContains(t, out, "10%")
}

func TestListEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/transcriptions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	configPath := writeTestConfig(t, startService(t, mux))

	out, _, err := runCLI(t, configPath, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "No transcriptions.")
}
