// Package ioutils provides file system and image utilities for the
// client's download pipeline.
//
// This package contains functions for:
//   - Directory creation
//   - File writing
//   - Thumbnail resizing and JPEG conversion
package ioutils

import "os"

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile("/videos/course.m3u", playlistContent)
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they
// don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/videos/edX/Demo Course")
//	// Creates /videos, /videos/edX, and /videos/edX/Demo Course if needed
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
