// Package config resolves runtime settings from a YAML file, environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/quizmaster/internal/quiz"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Resolve.
const (
	EnvConfig = "QUIZMASTER_CONFIG"
	EnvBank   = "QUIZMASTER_BANK"
	EnvDelay  = "QUIZMASTER_DELAY"
	EnvLog    = "QUIZMASTER_LOG"
)

// Config holds runtime settings.
type Config struct {
	// BankPath is the question bank file. Empty means the built-in bank.
	BankPath string `yaml:"bank"`
	// FeedbackDelay is a duration string such as "1500ms".
	FeedbackDelay string `yaml:"feedback_delay"`
	// LogFile receives debug logs. Empty disables logging.
	LogFile string `yaml:"log_file"`
}

// Overrides are values given on the command line. Empty fields are unset.
type Overrides struct {
	ConfigPath    string
	BankPath      string
	FeedbackDelay string
	LogFile       string
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve builds the effective config. Flags win over environment
// variables, which win over the config file.
func Resolve(o Overrides) (Config, error) {
	path := o.ConfigPath
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	cfg := Config{}
	if path != "" {
		loaded, err := Load(path)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// No config file at the default location.
		default:
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}

	cfg.BankPath = firstNonEmpty(o.BankPath, os.Getenv(EnvBank), cfg.BankPath)
	cfg.FeedbackDelay = firstNonEmpty(o.FeedbackDelay, os.Getenv(EnvDelay), cfg.FeedbackDelay)
	cfg.LogFile = firstNonEmpty(o.LogFile, os.Getenv(EnvLog), cfg.LogFile)
	return cfg, nil
}

// Delay returns the feedback delay, falling back to the default when unset
// or unparseable.
func (c Config) Delay() time.Duration {
	return Duration(c.FeedbackDelay, quiz.DefaultFeedbackDelay)
}

// DefaultPath returns $XDG_CONFIG_HOME/quizmaster/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizmaster", "config.yaml"), nil
}

// Duration parses a duration string or returns the fallback if empty,
// invalid, or negative.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d >= 0 {
		return d
	}
	return fallback
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
