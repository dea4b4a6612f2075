// Package fileutil provides local file inspection helpers for upload
// submissions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions the transcription service accepts for uploads.
var mediaExtensions = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".avi":  {},
	".mov":  {},
	".webm": {},
	".mp3":  {},
	".wav":  {},
	".m4a":  {},
	".flac": {},
	".ogg":  {},
}

// SupportedMediaExtension reports whether ext (with leading dot) names a
// media type the service accepts. Matching is case-insensitive.
func SupportedMediaExtension(ext string) bool {
	_, ok := mediaExtensions[strings.ToLower(ext)]
	return ok
}

// ResolveMediaFile checks that path names an existing, supported media file
// and returns its absolute form.
func ResolveMediaFile(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file does not exist: %s", absPath)
		}
		return "", fmt.Errorf("inspect file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", absPath)
	}

	ext := filepath.Ext(info.Name())
	if !SupportedMediaExtension(ext) {
		return "", fmt.Errorf("unsupported file extension %q", strings.ToLower(ext))
	}
	return absPath, nil
}
