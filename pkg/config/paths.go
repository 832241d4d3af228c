package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvDevdocsConfig = "DEVDOCS_CONFIG"
	EnvDevdocsHome   = "DEVDOCS_HOME"
)

// ResolveConfigPath returns $DEVDOCS_CONFIG, else $DEVDOCS_HOME/config.json,
// else ~/.devdocs/config.json.
func ResolveConfigPath() string {
	if p := expandHome(strings.TrimSpace(os.Getenv(EnvDevdocsConfig))); p != "" {
		return p
	}

	homeDir := expandHome(strings.TrimSpace(os.Getenv(EnvDevdocsHome)))
	if homeDir == "" {
		homeDir = defaultHome()
	}
	return filepath.Join(homeDir, "config.json")
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".devdocs"
	}
	return filepath.Join(home, ".devdocs")
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
		return filepath.Join(home, path[2:])
	}
	return home
}
