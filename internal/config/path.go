// Package config maps viper settings onto the classifier configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir is where the config file is searched for first.
const ConfigDir = "~/.config/deslop"

// ExpandPath expands a leading ~ and then $VAR references in path.
// A home directory that cannot be resolved leaves the ~ in place.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~" || strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.ExpandEnv(path)
}
