package utils

import (
	"os"
	"path/filepath"
)

// GetDefaultPreviewDir creates a scratch directory for page previews.
func GetDefaultPreviewDir() string {
	tmpDir, err := os.MkdirTemp("", "wrapbench-preview-*")
	if err != nil {
		return "wrapbench-preview"
	}
	return tmpDir
}

// ExpandHome resolves a leading "~/" against the user's home directory.
func ExpandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
