// Package main hosts the scribe CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into calls
// against the remote transcription service: submissions that watch progress
// to completion, one-off status lookups, exports, and configuration
// scaffolding. It centralizes configuration resolution, structured logging
// setup, and client construction so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: lifecycle semantics live in internal/tracker and
// the wire boundary in internal/services/transcriber; surface new
// functionality through those packages first.
package main
