// Package logging configures the shared slog logger and standardized
// attribute helpers.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for machine consumption. Components receive child loggers via
// NewComponentLogger so every record carries a component field, and HTTP
// requests are correlated through FieldCorrelationID.
package logging
