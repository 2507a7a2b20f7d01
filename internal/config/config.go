package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultDir is where planboard keeps its configuration, relative to the
// user's home directory.
const DefaultDir = "~/.planboard"

// Config holds every tunable of the application. Values come from
// (lowest to highest precedence): built-in defaults, the YAML config
// file, then PLANBOARD_* environment variables.
type Config struct {
	// BoardPath is the board document written on every mutation.
	BoardPath string `yaml:"board_path" env:"PLANBOARD_BOARD"`
	// AuditDBPath is the SQLite database holding reconciliation history.
	AuditDBPath string `yaml:"audit_db_path" env:"PLANBOARD_AUDIT_DB"`
	LogLevel    string `yaml:"log_level" env:"PLANBOARD_LOG_LEVEL"`

	Feed FeedConfig `yaml:"feed"`
}

// FeedConfig names the columns of the attendance CSV export. Override
// these when the export's headers were renamed.
type FeedConfig struct {
	FirstNameColumn string `yaml:"first_name_column" env:"PLANBOARD_FEED_FIRST_NAME"`
	LastNameColumn  string `yaml:"last_name_column" env:"PLANBOARD_FEED_LAST_NAME"`
	JobColumn       string `yaml:"job_column" env:"PLANBOARD_FEED_JOB"`
}

func defaults() Config {
	return Config{
		BoardPath:   filepath.Join(DefaultDir, "output.json"),
		AuditDBPath: filepath.Join(DefaultDir, "audit.db"),
		LogLevel:    "info",
		Feed: FeedConfig{
			FirstNameColumn: "First Name",
			LastNameColumn:  "Last Name",
			JobColumn:       "Job Description",
		},
	}
}

// Path returns the config file location, honoring PLANBOARD_CONFIG.
func Path() string {
	if env := os.Getenv("PLANBOARD_CONFIG"); env != "" {
		return env
	}
	return filepath.Join(DefaultDir, "config.yaml")
}

// Load builds the effective configuration. A missing config file is not
// an error; a malformed one is.
func Load() (Config, error) {
	cfg := defaults()

	path := ExpandHome(Path())
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.BoardPath = ExpandHome(cfg.BoardPath)
	cfg.AuditDBPath = ExpandHome(cfg.AuditDBPath)
	return cfg, nil
}

// Init writes a config file populated with the defaults, creating the
// config directory as needed. Fails if the file already exists.
func Init() (string, error) {
	path := ExpandHome(Path())
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(defaults())
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
