// Package transcriber is the typed HTTP boundary to the remote
// transcription service.
//
// The Client is stateless request/response mapping only: every call is a
// single attempt with no retries, caching, or polling. Retry policy belongs
// to the lifecycle tracker. Failures are reported through the typed errors
// in errors.go so callers can distinguish submission, fetch, and export
// problems with errors.As.
package transcriber
