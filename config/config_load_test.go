package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_AppliesDefaultMaxRequestBodySize(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}

	yamlBody := []byte(`env:
  env: test
  serviceName: storeadmin
http:
  port: 8080
postgres:
  host: localhost
`)
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), yamlBody, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Chdir(dir)

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if cfg.HTTP.Port != 8080 {
		t.Errorf("HTTP.Port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Errorf("HTTP.MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
}

func TestNew_KeepsExplicitMaxRequestBodySize(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}

	yamlBody := []byte(`env:
  env: test
http:
  port: 8080
  maxRequestBodySize: 2MB
postgres:
  host: localhost
`)
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), yamlBody, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Chdir(dir)

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if cfg.HTTP.MaxRequestBodySize != "2MB" {
		t.Errorf("HTTP.MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, "2MB")
	}
}
