// Package config handles loading and managing application configuration
// from YAML files, .env files and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration values.
type Config struct {
	Port            int      `yaml:"port"`
	DataDir         string   `yaml:"data_dir"`
	OutputDir       string   `yaml:"output_dir"`
	DefaultText     string   `yaml:"default_text"`
	ShareURL        string   `yaml:"share_url"`
	PreviewCacheTTL Duration `yaml:"preview_cache_ttl"`
	LogLevel        string   `yaml:"log_level"`
}

// Duration is a wrapper around time.Duration that supports YAML unmarshalling
// from human-readable strings like "30s", "5m", "1h".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// defaults returns a Config populated with sensible default values.
func defaults() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return &Config{
		Port:            8544,
		DataDir:         filepath.Join(homeDir, ".qr-code-app"),
		OutputDir:       "",
		DefaultText:     "https://github.com/Justina18/qr-code-app",
		ShareURL:        "https://api.whatsapp.com/send",
		PreviewCacheTTL: Duration{30 * time.Second},
		LogLevel:        "info",
	}
}

// Load reads configuration from the YAML file at path, falling back to
// defaults if the file does not exist. A .env file in the working directory
// is loaded first, then environment variables with the QR_APP_ prefix
// override any file or default values.
func Load(path string) (*Config, error) {
	// Missing .env is fine; it only exists to seed the environment.
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// File doesn't exist — proceed with defaults.
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides applies QR_APP_* environment variable overrides to cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("QR_APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("QR_APP_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("QR_APP_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("QR_APP_DEFAULT_TEXT"); v != "" {
		cfg.DefaultText = v
	}
	if v := os.Getenv("QR_APP_SHARE_URL"); v != "" {
		cfg.ShareURL = v
	}
	if v := os.Getenv("QR_APP_PREVIEW_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PreviewCacheTTL = Duration{d}
		}
	}
	if v := os.Getenv("QR_APP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// EnsureDataDir creates the DataDir and its logos subdirectory if they
// do not already exist.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", c.DataDir, err)
	}
	logosDir := filepath.Join(c.DataDir, "logos")
	if err := os.MkdirAll(logosDir, 0o755); err != nil {
		return fmt.Errorf("creating logos dir %s: %w", logosDir, err)
	}
	return nil
}

// ExportDir returns the directory downloads are written to: OutputDir when
// set, otherwise an exports subdirectory of DataDir.
func (c *Config) ExportDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return filepath.Join(c.DataDir, "exports")
}
