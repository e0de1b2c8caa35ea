package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				Port:           "8081",
				DBPath:         "./ledger.db",
				CategoriesPath: "./categories.json",
				LogLevel:       "info",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:           "abc",
				DBPath:         "./ledger.db",
				CategoriesPath: "./categories.json",
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:           "70000",
				DBPath:         "./ledger.db",
				CategoriesPath: "./categories.json",
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "missing database path",
			config: Config{
				Port:           "8081",
				CategoriesPath: "./categories.json",
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name: "missing categories path",
			config: Config{
				Port:     "8081",
				DBPath:   "./ledger.db",
				LogLevel: "info",
			},
			wantErr:     true,
			errorString: "categories document path cannot be empty",
		},
		{
			name: "invalid log level",
			config: Config{
				Port:           "8081",
				DBPath:         "./ledger.db",
				CategoriesPath: "./categories.json",
				LogLevel:       "loud",
			},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error = %q, want it to contain %q", err, tt.errorString)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateCreatesDBDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := Config{
		Port:           "8081",
		DBPath:         filepath.Join(dir, "ledger.db"),
		CategoriesPath: "./categories.json",
		LogLevel:       "info",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}
	for _, tt := range tests {
		got := (&Config{LogLevel: tt.level}).SlogLevel()
		if got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
