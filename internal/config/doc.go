// Package config loads, normalizes, and validates scribe configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: the transcription service endpoint, poll cadence, submission
// defaults, and log output settings.
//
// Always obtain settings through this package so downstream code receives a
// sanitized base URL, canonical poll strategy names, and clear validation
// errors.
package config
