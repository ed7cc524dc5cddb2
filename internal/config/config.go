package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/me/jobseq/internal/logging"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds configuration for the jobseq server.
type ServerConfig struct {
	Addr      string          `yaml:"addr"`       // Listen address (default ":8080")
	LogLevel  string          `yaml:"log_level"`  // Log level: debug, info, warn, error
	LogFormat string          `yaml:"log_format"` // Log format: text, json
	DBPath    string          `yaml:"db_path"`    // SQLite database path (default ~/.jobseq/jobseq.db, ":memory:" for testing)
	Retention RetentionConfig `yaml:"retention"`
}

// RetentionConfig controls pruning of stored runs.
type RetentionConfig struct {
	Schedule string        `yaml:"schedule"` // 5-field cron expression
	MaxAge   time.Duration `yaml:"max_age"`  // 0 disables pruning
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
		Retention: RetentionConfig{
			Schedule: "0 * * * *",
			MaxAge:   7 * 24 * time.Hour,
		},
	}
}

// Load reads a YAML config file and overlays it on DefaultServerConfig.
// Unknown keys are rejected.
func Load(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that all config values are usable.
func (c ServerConfig) Validate() error {
	if c.Addr == "" {
		return errors.New("invalid config: addr cannot be empty")
	}
	if _, ok := logging.LookupLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid config: unknown log_level %q", c.LogLevel)
	}
	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("invalid config: unknown log_format %q", c.LogFormat)
	}
	if c.Retention.MaxAge < 0 {
		return fmt.Errorf("invalid config: retention.max_age %s is negative", c.Retention.MaxAge)
	}
	if c.Retention.MaxAge > 0 && c.Retention.Schedule == "" {
		return errors.New("invalid config: retention.schedule is required when retention.max_age is set")
	}
	return nil
}

// ResolveDBPath returns DBPath, or ~/.jobseq/jobseq.db when it is empty.
// The directory is created if needed.
func (c ServerConfig) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	dir := filepath.Join(home, ".jobseq")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return filepath.Join(dir, "jobseq.db"), nil
}
