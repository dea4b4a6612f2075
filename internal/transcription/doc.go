// Package transcription defines the domain model shared by the service
// client, the lifecycle tracker, and the CLI.
//
// The transcription service is authoritative for every field on a Job;
// clients never mutate individual fields and instead replace the whole
// record with the server's latest snapshot. Status values form a forward-only
// state machine that ends in one of the terminal statuses.
package transcription
