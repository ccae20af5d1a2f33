package config

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/scaledown-ai/scaledown/internal/errors"
)

// APIConfig contains settings for the remote compression service.
type APIConfig struct {
	Key     string  `yaml:"key,omitempty"`      // falls back to SCALEDOWN_API_KEY
	BaseURL string  `yaml:"base_url,omitempty"` // empty uses the service default
	Rate    float64 `yaml:"rate,omitempty"`     // default compression rate (0-1)
}

// Config represents the scaledown configuration file.
type Config struct {
	Version      int       `yaml:"version"`
	DefaultModel string    `yaml:"default_model,omitempty"`
	GuidesDir    string    `yaml:"guides_dir,omitempty"` // extra guide YAML files
	API          APIConfig `yaml:"api,omitempty"`
}

// Default values.
const (
	DefaultVersion = 1
	DefaultRate    = 0.5
)

// Load reads config from the default location. A missing config file is not
// an error: commands work with defaults alone.
func Load() (*Config, error) {
	paths := NewPaths()
	cfg, err := LoadFrom(paths.ConfigFile)
	if err != nil {
		var sdErr *errors.ScaleDownError
		if stderrors.As(err, &sdErr) && sdErr.Code == errors.ErrConfigNotFound {
			cfg = &Config{}
			cfg.applyDefaults()
			// Pick up user guides from the conventional location when the
			// config doesn't name one.
			if dirExists(paths.GuidesDir) {
				cfg.GuidesDir = paths.GuidesDir
			}
			return cfg, nil
		}
		return nil, err
	}
	if cfg.GuidesDir == "" && dirExists(paths.GuidesDir) {
		cfg.GuidesDir = paths.GuidesDir
	}
	return cfg, nil
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveTo writes config to a specific path, creating the directory if needed.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks config for valid values.
func (c *Config) Validate() error {
	if c.API.Rate < 0 || c.API.Rate > 1 {
		return errors.ConfigInvalid("api.rate must be between 0 and 1")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.API.Rate == 0 {
		c.API.Rate = DefaultRate
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
