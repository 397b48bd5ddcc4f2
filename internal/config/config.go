package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the critique configuration.
type Config struct {
	Provider     string        `yaml:"provider"`
	Model        string        `yaml:"model"`
	Addr         string        `yaml:"addr"`
	Format       string        `yaml:"format"`
	MinCodeLen   int           `yaml:"minCodeLength"`
	MaxCodeBytes int           `yaml:"maxCodeBytes"`
	Cache        CacheConfig   `yaml:"cache"`
	Privacy      PrivacyConfig `yaml:"privacy"`
}

// CacheConfig controls caching of provider reviews.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Dir        string `yaml:"dir,omitempty"`
	TTLSeconds int    `yaml:"ttlSeconds"`
}

// PrivacyConfig controls redaction of snippets sent to a provider.
type PrivacyConfig struct {
	RedactSecrets bool `yaml:"redactSecrets"`
}

// Default returns a Config with all defaults applied. The default provider
// is "heuristic", which reviews entirely offline.
func Default() Config {
	return Config{
		Provider:     "heuristic",
		Addr:         "localhost:8080",
		Format:       "text",
		MinCodeLen:   1,
		MaxCodeBytes: 200000,
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 86400,
		},
		Privacy: PrivacyConfig{
			RedactSecrets: true,
		},
	}
}

// ConfigDir returns the directory holding the config file, a "critique"
// folder under the per-user config directory.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(base, "critique"), nil
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads the config file alone, without defaults. A missing file
// yields a zero Config and nil error.
func LoadFile() (Config, error) {
	var cfg Config
	if err := readInto(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config, each layer winning over the one
// before it: defaults, the config file, CRITIQUE_* environment variables,
// then CLI overrides.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()
	if err := readInto(&cfg); err != nil {
		return Config{}, err
	}
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)
	return cfg, nil
}

// readInto unmarshals the config file over cfg, so keys absent from the
// file keep their current values. Booleans the file does spell out take
// effect even when false.
func readInto(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// envVars maps settable keys to their environment variable names.
var envVars = map[string]string{
	"provider":     "CRITIQUE_PROVIDER",
	"model":        "CRITIQUE_MODEL",
	"addr":         "CRITIQUE_ADDR",
	"format":       "CRITIQUE_FORMAT",
	"maxCodeBytes": "CRITIQUE_MAX_CODE_BYTES",
}

// mergeEnv and mergeOverrides skip malformed values, leaving the layer
// below in place.
func mergeEnv(cfg *Config) {
	for key, name := range envVars {
		if v := os.Getenv(name); v != "" {
			_ = SetField(cfg, key, v)
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	for key, v := range overrides {
		if v != "" {
			_ = SetField(cfg, key, v)
		}
	}
}

// SetField assigns one configuration field by its config-file key name.
func SetField(cfg *Config, key, value string) error {
	if p, ok := stringFields(cfg)[key]; ok {
		*p = value
		return nil
	}
	if p, ok := intFields(cfg)[key]; ok {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		*p = n
		return nil
	}
	return fmt.Errorf("unknown config key: %s", key)
}

func stringFields(cfg *Config) map[string]*string {
	return map[string]*string{
		"provider": &cfg.Provider,
		"model":    &cfg.Model,
		"addr":     &cfg.Addr,
		"format":   &cfg.Format,
	}
}

func intFields(cfg *Config) map[string]*int {
	return map[string]*int{
		"minCodeLength": &cfg.MinCodeLen,
		"maxCodeBytes":  &cfg.MaxCodeBytes,
	}
}
