package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// Dir is the per-project directory holding config.yaml.
	Dir = ".workdesk"

	// DefaultStore is the named store used when nothing selects another one.
	DefaultStore = "prod"

	// MemoryStore selects a throwaway in-memory store.
	MemoryStore = ":memory:"

	// DefaultPollInterval is the board refresh period.
	DefaultPollInterval = 4 * time.Second

	// DefaultClientID is the walk-in client that customer requests are filed under.
	DefaultClientID int64 = 0
)

// Environment overrides, applied after config.yaml and .env.
const (
	EnvStore        = "WORKDESK_STORE"
	EnvDataDir      = "WORKDESK_DATA_DIR"
	EnvPollInterval = "WORKDESK_POLL_INTERVAL"
	EnvLogLevel     = "WORKDESK_LOG_LEVEL"
)

// Config represents .workdesk/config.yaml merged with environment overrides.
type Config struct {
	Store           string        `yaml:"store"`
	DataDir         string        `yaml:"data_dir,omitempty"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	DefaultClientID int64         `yaml:"default_client_id"`
	LogLevel        string        `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Store:           DefaultStore,
		PollInterval:    DefaultPollInterval,
		DefaultClientID: DefaultClientID,
		LogLevel:        "info",
	}
}

// Load reads .workdesk/config.yaml from dir (missing file is fine), then
// .env from dir, then WORKDESK_* environment variables.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, Dir, "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// godotenv.Load never overrides variables that are already set.
	envPath := filepath.Join(dir, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.Store == "" {
		cfg.Store = DefaultStore
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvStore); ok && v != "" {
		c.Store = v
	}
	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		c.DataDir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPollInterval); ok && v != "" {
		d, err := parseInterval(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPollInterval, v, err)
		}
		c.PollInterval = d
	}
	return nil
}

// parseInterval accepts Go durations ("4s") or bare milliseconds ("4000").
func parseInterval(v string) (time.Duration, error) {
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(v)
}

// Save writes config.yaml under dir/.workdesk.
func Save(dir string, cfg *Config) error {
	wdDir := filepath.Join(dir, Dir)
	if err := os.MkdirAll(wdDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", Dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(wdDir, "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ResolveDataDir returns DataDir, defaulting to ~/.workdesk.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, Dir), nil
}

// StorePath returns the file backing the selected store, or ":memory:".
func (c *Config) StorePath() (string, error) {
	if c.Store == MemoryStore {
		return MemoryStore, nil
	}
	dataDir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, c.Store+".db"), nil
}
