// Package config handles scaledown configuration.
package config

import (
	"os"
	"path/filepath"
)

// Paths provides all scaledown-related filesystem paths.
type Paths struct {
	ConfigDir  string // ~/.config/scaledown
	ConfigFile string // ~/.config/scaledown/config.yaml
	GuidesDir  string // ~/.config/scaledown/guides
}

// NewPaths creates Paths under ~/.config for cross-platform consistency
// rather than platform-specific defaults.
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	configDir := filepath.Join(home, ".config", "scaledown")
	return NewPathsWithOverrides(configDir)
}

// NewPathsWithOverrides allows overriding the config directory for testing.
func NewPathsWithOverrides(configDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		GuidesDir:  filepath.Join(configDir, "guides"),
	}
}
