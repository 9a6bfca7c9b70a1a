package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return configPath
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Filter.Preset != "" {
		t.Errorf("Preset = %q, want empty", cfg.Filter.Preset)
	}
	if len(cfg.Filter.Ranges) != 0 {
		t.Errorf("Ranges = %v, want none", cfg.Filter.Ranges)
	}
	if cfg.Filter.Label != "lines" {
		t.Errorf("Label = %q, want %q", cfg.Filter.Label, "lines")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("File level = %q, want none", cfg.Logging.FileLogger.Level)
	}
	if len(cfg.Reporting.Destination) == 0 {
		t.Error("Report destination should have a default")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	rangesFile := filepath.Join(t.TempDir(), "ranges.hcl")
	if err := os.WriteFile(rangesFile, []byte("range \"a\" {\n  start = 1\n}\n"), 0644); err != nil {
		t.Fatalf("Failed to write range file: %v", err)
	}

	configPath := writeConfig(t, `version: 1
filter:
  preset: animations
  ranges:
    - name: toast
      start: 5412
      end: 5584
    - start: 10
      end: 12
  ranges_file: `+rangesFile+`
  encoding: windows-1252
  label: lines of animations
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Filter.Preset != "animations" {
		t.Errorf("Preset = %q", cfg.Filter.Preset)
	}
	if len(cfg.Filter.Ranges) != 2 {
		t.Fatalf("Ranges length = %d, want 2", len(cfg.Filter.Ranges))
	}
	if r := cfg.Filter.Ranges[0]; r.Name != "toast" || r.Start != 5412 || r.End != 5584 {
		t.Errorf("first range = %+v", r)
	}
	if cfg.Filter.Encoding != "windows-1252" {
		t.Errorf("Encoding = %q", cfg.Filter.Encoding)
	}
	if cfg.Filter.Label != "lines of animations" {
		t.Errorf("Label = %q", cfg.Filter.Label)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("Console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
	// untouched values come from defaults
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("File level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `version: 1
filter:
  preset: animations
  invalid indent
`)
	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	configPath := writeConfig(t, `version: 1
unknown_field: value
`)
	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationErrors(t *testing.T) {
	tests := map[string]string{
		"version":     "version: 2\n",
		"range start": "version: 1\nfilter:\n  ranges:\n    - start: 0\n      end: 3\n",
		"label":       "version: 1\nfilter:\n  label: \"\"\n",
		"log level":   "version: 1\nlogging:\n  console:\n    level: loud\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, content)); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfiguration_ReversedRangeAllowed(t *testing.T) {
	configPath := writeConfig(t, "version: 1\nfilter:\n  ranges:\n    - start: 9\n      end: 3\n")
	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Filter.Ranges[0].Lines() != 0 {
		t.Error("reversed range should cover nothing")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Filter.Preset = "animations-tight"

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "animations-tight") {
		t.Errorf("Dump() output misses preset:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Filter.Preset != cfg.Filter.Preset {
		t.Errorf("Preset mismatch after dump/load: got %q, want %q", cfg2.Filter.Preset, cfg.Filter.Preset)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}
