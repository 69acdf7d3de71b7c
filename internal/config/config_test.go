package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GustavoCaso/expensify/internal/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "expensify.toml")
	if err := os.WriteFile(file, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	return file
}

func TestParse(t *testing.T) {
	file := writeConfig(t, `
seed = "expenses.yml"
no_color = true

[logger]
level = "debug"
format = "json"
output = "discard"
`)

	conf, err := Parse(file)
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if conf.Seed != "expenses.yml" {
		t.Errorf("Expected seed 'expenses.yml', got '%s'", conf.Seed)
	}

	if !conf.NoColor {
		t.Error("Expected no_color to be true")
	}

	if conf.Logger.Level != logger.LevelDebug {
		t.Errorf("Expected logger level 'debug', got '%s'", conf.Logger.Level)
	}

	if conf.Logger.Format != logger.FormatJSON {
		t.Errorf("Expected logger format 'json', got '%s'", conf.Logger.Format)
	}

	if conf.Logger.Output != "discard" {
		t.Errorf("Expected logger output 'discard', got '%s'", conf.Logger.Output)
	}
}

func TestParseENV(t *testing.T) {
	t.Setenv("EXPENSIFY_SEED", "seed.toml")
	t.Setenv("EXPENSIFY_NO_COLOR", "true")
	t.Setenv("EXPENSIFY_LOG_LEVEL", "warn")
	t.Setenv("EXPENSIFY_LOG_FORMAT", "json")
	t.Setenv("EXPENSIFY_LOG_OUTPUT", "discard")

	conf, err := Parse("noexiting.toml")
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if conf.Seed != "seed.toml" {
		t.Errorf("Expected seed 'seed.toml', got '%s'", conf.Seed)
	}

	if !conf.NoColor {
		t.Error("Expected no_color to be true")
	}

	if conf.Logger.Level != logger.LevelWarn {
		t.Errorf("Expected logger level 'warn', got '%s'", conf.Logger.Level)
	}

	if conf.Logger.Format != logger.FormatJSON {
		t.Errorf("Expected logger format 'json', got '%s'", conf.Logger.Format)
	}

	if conf.Logger.Output != "discard" {
		t.Errorf("Expected logger output 'discard', got '%s'", conf.Logger.Output)
	}
}

func TestParseENVOverridesFile(t *testing.T) {
	file := writeConfig(t, `
[logger]
level = "debug"
`)
	t.Setenv("EXPENSIFY_LOG_LEVEL", "error")

	conf, err := Parse(file)
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if conf.Logger.Level != logger.LevelError {
		t.Errorf("Expected logger level 'error', got '%s'", conf.Logger.Level)
	}
}

func TestParseDefaults(t *testing.T) {
	conf, err := Parse("")
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}

	if conf.Seed != "" {
		t.Errorf("Expected no seed, got '%s'", conf.Seed)
	}

	if conf.NoColor {
		t.Error("Expected color to be enabled")
	}

	if conf.Logger.Level != defaultLogLevel || conf.Logger.Format != defaultLogFormat || conf.Logger.Output != defaultLogOutput {
		t.Errorf("Expected default logger config, got %+v", conf.Logger)
	}
}

func TestParseNonExistentFile(t *testing.T) {
	_, err := Parse("non-existent-file.toml")
	if err != nil {
		t.Errorf("Expected no error when parsing non-existent file, got %+v", err)
	}
}

func TestParseInvalidFile(t *testing.T) {
	file := writeConfig(t, `seed = [`)

	_, err := Parse(file)
	if err == nil {
		t.Error("Expected error for invalid TOML, got nil")
	}
}

func TestParseInvalidNoColor(t *testing.T) {
	t.Setenv("EXPENSIFY_NO_COLOR", "maybe")

	_, err := Parse("")
	if err == nil {
		t.Error("Expected error for invalid EXPENSIFY_NO_COLOR, got nil")
	}
}
