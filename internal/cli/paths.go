package cli

import (
	"os"
	"path/filepath"
)

// appName names the per-user cache and config directories.
const appName = "identicon"

// cacheDir returns the artifact cache directory, honoring XDG_CACHE_HOME
// and falling back to ~/.cache/identicon.
func cacheDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the default config file location, honoring
// XDG_CONFIG_HOME and falling back to ~/.config/identicon/config.toml.
// A missing file is fine; config.Load treats it as defaults.
func configPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
