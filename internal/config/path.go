// Package config resolves configuration values for the catalog commands.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// ResolvePath expands path, falling back to def when path is blank.
func ResolvePath(path, def string) string {
	if strings.TrimSpace(path) == "" {
		path = def
	}
	return ExpandPath(path)
}
