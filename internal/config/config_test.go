package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Assistant.Timeout != 120*time.Second {
		t.Errorf("Timeout = %v", cfg.Assistant.Timeout)
	}
	if !cfg.Assistant.Sessions {
		t.Error("Sessions should default on")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Export.Mode != "ascii" {
		t.Errorf("Export.Mode = %q", cfg.Export.Mode)
	}
}

func TestLoad_YAML(t *testing.T) {
	data := []byte(`
assistant:
  base_url: https://assistant.example.com
  api_key_path: /etc/foreman/key
  sessions: false
log:
  level: debug
export:
  mode: markdown
`)
	cfg, err := Load(data, ".yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Assistant.BaseURL != "https://assistant.example.com" {
		t.Errorf("BaseURL = %q", cfg.Assistant.BaseURL)
	}
	if cfg.Assistant.Sessions {
		t.Error("Sessions should be off")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Format = %q, want default preserved", cfg.Log.Format)
	}
	if cfg.Export.Mode != "markdown" {
		t.Errorf("Mode = %q", cfg.Export.Mode)
	}
}

func TestLoad_JSONDetectedByContent(t *testing.T) {
	data := []byte(`{"assistant": {"base_url": "http://localhost:8080"}}`)
	cfg, err := Load(data, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Assistant.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.Assistant.BaseURL)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := Load([]byte("assistant: [unbalanced"), ".yaml"); err == nil {
		t.Error("malformed yaml should fail")
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foreman.yml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
}

func TestLoadFromPath_Missing(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
