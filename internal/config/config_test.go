package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir switches the working directory for the duration of the test so Load
// resolves config.yaml from a controlled location
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

// TestLoadDefaults verifies that a missing config file yields the defaults
func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("HARNESSTEST")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30 {
		t.Errorf("Expected default read_timeout 30, got %d", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 300 {
		t.Errorf("Expected default write_timeout 300, got %d", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownTimeout != 30 {
		t.Errorf("Expected default shutdown_timeout 30, got %d", cfg.Server.ShutdownTimeout)
	}
}

// TestLoadFromFile verifies config.yaml overrides the defaults
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 9999
  write_timeout: 600
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	chdir(t, dir)

	cfg, err := Load("HARNESSTEST")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Expected port 9999 from file, got %d", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeout != 600 {
		t.Errorf("Expected write_timeout 600 from file, got %d", cfg.Server.WriteTimeout)
	}
	// Untouched keys keep their defaults
	if cfg.Server.ReadTimeout != 30 {
		t.Errorf("Expected default read_timeout 30, got %d", cfg.Server.ReadTimeout)
	}
}

// TestLoadEnvOverride verifies environment variables win over the file
func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 9999
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	chdir(t, dir)
	t.Setenv("HARNESSTEST_SERVER_PORT", "9001")

	cfg, err := Load("HARNESSTEST")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9001 {
		t.Errorf("Expected env port 9001, got %d", cfg.Server.Port)
	}
}

// TestLoadRejectsInvalidConfig verifies Validate runs as part of Load
func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: -1
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	chdir(t, dir)

	if _, err := Load("HARNESSTEST"); err == nil {
		t.Error("Expected an error for an invalid port")
	}
}

// TestValidate walks the per-field validation rules
func TestValidate(t *testing.T) {
	valid := Config{Server: ServerConfig{
		Port:            8080,
		ReadTimeout:     30,
		WriteTimeout:    300,
		IdleTimeout:     120,
		ShutdownTimeout: 30,
	}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }},
		{"write timeout", func(c *Config) { c.Server.WriteTimeout = -1 }},
		{"idle timeout", func(c *Config) { c.Server.IdleTimeout = 0 }},
		{"shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }},
	}
	for _, tc := range cases {
		cfg := valid
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}
