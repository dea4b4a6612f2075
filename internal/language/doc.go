// Package language normalizes user-supplied language hints and renders
// detected language codes for display.
//
// Hints arrive in several shapes (ISO 639-1, ISO 639-2, full English
// names); the transcription service only accepts two-letter codes, so all
// conversions are consolidated here.
package language
