package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Provider != "heuristic" {
		t.Errorf("Default provider = %q, want %q", cfg.Provider, "heuristic")
	}
	if cfg.Format != "text" {
		t.Errorf("Default format = %q, want %q", cfg.Format, "text")
	}
	if cfg.Addr != "localhost:8080" {
		t.Errorf("Default addr = %q, want %q", cfg.Addr, "localhost:8080")
	}
	if cfg.MinCodeLen != 1 {
		t.Errorf("Default minCodeLength = %d, want 1", cfg.MinCodeLen)
	}
	if cfg.MaxCodeBytes != 200000 {
		t.Errorf("Default maxCodeBytes = %d, want 200000", cfg.MaxCodeBytes)
	}
	if !cfg.Cache.Enabled {
		t.Error("Default cache should be enabled")
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("Default redactSecrets should be true")
	}
}

func setEnvForTest(t *testing.T, key, value string) {
	t.Helper()
	orig, had := os.LookupEnv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, orig)
		} else {
			os.Unsetenv(key)
		}
	})
}

// writeConfigFile points XDG_CONFIG_HOME at a fresh directory and plants
// a config file there.
func writeConfigFile(t *testing.T, body string) {
	t.Helper()
	root := t.TempDir()
	setEnvForTest(t, "XDG_CONFIG_HOME", root)
	dir := filepath.Join(root, "critique")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
}

func TestLoad_FileLayersOverDefaults(t *testing.T) {
	writeConfigFile(t, `provider: ollama
model: qwen2.5-coder
addr: localhost:4000
format: markdown
minCodeLength: 5
cache:
  dir: /tmp/cache
  ttlSeconds: 3600
`)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "ollama" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "ollama")
	}
	if cfg.Model != "qwen2.5-coder" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Addr != "localhost:4000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Format != "markdown" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.MinCodeLen != 5 {
		t.Errorf("MinCodeLen = %d, want 5", cfg.MinCodeLen)
	}
	if cfg.Cache.Dir != "/tmp/cache" {
		t.Errorf("Cache.Dir = %q", cfg.Cache.Dir)
	}
	if cfg.Cache.TTLSeconds != 3600 {
		t.Errorf("Cache.TTLSeconds = %d, want 3600", cfg.Cache.TTLSeconds)
	}
	// Keys absent from the file keep their defaults.
	if cfg.MaxCodeBytes != 200000 {
		t.Errorf("MaxCodeBytes = %d, want default 200000", cfg.MaxCodeBytes)
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("RedactSecrets should keep its default when the file omits it")
	}
}

func TestLoad_FileCanDisableBooleans(t *testing.T) {
	writeConfigFile(t, `cache:
  enabled: false
privacy:
  redactSecrets: false
`)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Cache.Enabled {
		t.Error("the file should be able to disable the cache")
	}
	if cfg.Privacy.RedactSecrets {
		t.Error("the file should be able to disable redaction")
	}
	// Untouched defaults survive alongside the explicit booleans.
	if cfg.Cache.TTLSeconds != 86400 {
		t.Errorf("Cache.TTLSeconds = %d, want default 86400", cfg.Cache.TTLSeconds)
	}
}

func TestLoad_RejectsMalformedFile(t *testing.T) {
	writeConfigFile(t, "provider: [not: valid")

	if _, err := Load(nil); err == nil {
		t.Fatal("expected error for a malformed config file")
	}
}

func TestMergeEnv(t *testing.T) {
	setEnvForTest(t, "CRITIQUE_PROVIDER", "openai")
	setEnvForTest(t, "CRITIQUE_MODEL", "gpt-4o")
	setEnvForTest(t, "CRITIQUE_ADDR", "0.0.0.0:9090")
	setEnvForTest(t, "CRITIQUE_FORMAT", "json")
	setEnvForTest(t, "CRITIQUE_MAX_CODE_BYTES", "1000")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "openai")
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("Model = %q, want %q", cfg.Model, "gpt-4o")
	}
	if cfg.Addr != "0.0.0.0:9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, "0.0.0.0:9090")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.MaxCodeBytes != 1000 {
		t.Errorf("MaxCodeBytes = %d, want 1000", cfg.MaxCodeBytes)
	}
}

func TestMergeEnv_MalformedIntIsSkipped(t *testing.T) {
	setEnvForTest(t, "CRITIQUE_MAX_CODE_BYTES", "lots")

	cfg := Default()
	mergeEnv(&cfg)
	if cfg.MaxCodeBytes != 200000 {
		t.Errorf("MaxCodeBytes = %d, want the default to survive a bad value", cfg.MaxCodeBytes)
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{
		"provider":     "anthropic",
		"model":        "claude-sonnet-4-20250514",
		"format":       "json",
		"addr":         "localhost:9999",
		"maxCodeBytes": "5000",
	})

	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "anthropic")
	}
	if cfg.Model != "claude-sonnet-4-20250514" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Addr != "localhost:9999" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, "localhost:9999")
	}
	if cfg.MaxCodeBytes != 5000 {
		t.Errorf("MaxCodeBytes = %d, want 5000", cfg.MaxCodeBytes)
	}
}

func TestMergeOverrides_Nil(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, nil)
	if cfg.Provider != "heuristic" {
		t.Error("Provider changed with nil overrides")
	}
}

func TestConfigPrecedence(t *testing.T) {
	setEnvForTest(t, "CRITIQUE_PROVIDER", "openai")

	cfg := Default()
	mergeEnv(&cfg)
	if cfg.Provider != "openai" {
		t.Errorf("After env merge, Provider = %q, want %q", cfg.Provider, "openai")
	}

	mergeOverrides(&cfg, map[string]string{"provider": "ollama"})
	if cfg.Provider != "ollama" {
		t.Errorf("After override, Provider = %q, want %q", cfg.Provider, "ollama")
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	tests := []struct {
		key   string
		value string
	}{
		{"provider", "openai"},
		{"model", "gpt-4o"},
		{"format", "json"},
		{"addr", "localhost:3000"},
		{"minCodeLength", "10"},
		{"maxCodeBytes", "100000"},
	}

	for _, tt := range tests {
		if err := SetField(&cfg, tt.key, tt.value); err != nil {
			t.Errorf("SetField(%q, %q) error: %v", tt.key, tt.value, err)
		}
	}

	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "openai")
	}
	if cfg.MinCodeLen != 10 {
		t.Errorf("MinCodeLen = %d, want 10", cfg.MinCodeLen)
	}
	if cfg.MaxCodeBytes != 100000 {
		t.Errorf("MaxCodeBytes = %d, want 100000", cfg.MaxCodeBytes)
	}
}

func TestSetField_UnknownKey(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "nonexistent", "value"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSetField_InvalidInt(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "maxCodeBytes", "notanumber"); err == nil {
		t.Error("expected error for non-integer value")
	}
}

func TestConfigPath_XDG(t *testing.T) {
	setEnvForTest(t, "XDG_CONFIG_HOME", "/tmp/xdg-test")

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath error: %v", err)
	}
	if path != "/tmp/xdg-test/critique/config.yaml" {
		t.Errorf("ConfigPath = %q, want %q", path, "/tmp/xdg-test/critique/config.yaml")
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	setEnvForTest(t, "XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Provider = "anthropic"
	cfg.Model = "claude-sonnet-4-20250514"
	cfg.MaxCodeBytes = 12345

	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", loaded.Provider, "anthropic")
	}
	if loaded.Model != "claude-sonnet-4-20250514" {
		t.Errorf("Model = %q", loaded.Model)
	}
	if loaded.MaxCodeBytes != 12345 {
		t.Errorf("MaxCodeBytes = %d, want 12345", loaded.MaxCodeBytes)
	}
}

func TestLoadFile_NoFile(t *testing.T) {
	setEnvForTest(t, "XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Provider != "" {
		t.Errorf("Provider should be empty for missing file, got %q", cfg.Provider)
	}
}

func TestLoad_Integration(t *testing.T) {
	setEnvForTest(t, "XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(map[string]string{"provider": "openai"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "openai")
	}
	if cfg.MaxCodeBytes != 200000 {
		t.Errorf("MaxCodeBytes = %d, want default 200000", cfg.MaxCodeBytes)
	}
}
