// Package config resolves client configuration once at startup.
//
// Resolution order for every setting: environment variable, then
// ~/.eventplanner/config.yaml, then built-in default. The resolved
// Config is immutable; nothing re-reads the environment after Load.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Devduttshar/eventPlanner/internal/errors"
)

// Env variable names understood by the client.
const (
	EnvBaseURL  = "EVENTPLANNER_BASE_URL"
	EnvLogLevel = "EVENTPLANNER_LOG_LEVEL"
)

// Config holds the resolved client configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.example.com/api/v1".
	// Resolved once; the API gateway never re-reads it.
	BaseURL string `yaml:"base_url"`

	// LogLevel is the minimum log level ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`

	// Dir is the client state directory holding config.yaml, the
	// session file and downloaded reports. Not set from yaml.
	Dir string `yaml:"-"`
}

// DefaultDir returns the default client state directory (~/.eventplanner).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eventplanner"
	}
	return filepath.Join(home, ".eventplanner")
}

// Load resolves configuration from the given directory and the environment.
// A missing config file is not an error; a malformed one is.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = DefaultDir()
	}

	cfg := &Config{
		LogLevel: "warn",
		Dir:      dir,
	}

	path := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "invalid config file: "+path, err)
		}
	case os.IsNotExist(err):
		// No file; env and defaults apply.
	default:
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read config file: "+path, err)
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.Dir = dir

	return cfg, nil
}

// Validate checks that the configuration can drive API requests.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.NewBaseURLMissingError()
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return errors.New(errors.ErrCodeConfigBaseURL, "base URL must start with http:// or https://")
	}
	return nil
}

// SessionPath returns the path of the durable session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, "session.json")
}

// KeyPath returns the path of the session encryption keyfile.
func (c *Config) KeyPath() string {
	return filepath.Join(c.Dir, "session.key")
}

// ReportDir returns the directory where event reports are saved.
func (c *Config) ReportDir() string {
	return filepath.Join(c.Dir, "reports")
}
