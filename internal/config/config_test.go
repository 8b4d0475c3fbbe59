package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != "mocha" {
		t.Errorf("Theme = %q, want mocha", cfg.Theme)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !cfg.WatchFile {
		t.Error("WatchFile should default to true")
	}
	if cfg.Web.Bind != "127.0.0.1" {
		t.Errorf("Web.Bind = %q, want 127.0.0.1", cfg.Web.Bind)
	}
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Theme != "mocha" {
		t.Errorf("Theme = %q, want mocha", cfg.Theme)
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := `theme: latte
log_level: debug
categories: /tmp/cats.yaml
web:
  bind: 0.0.0.0
  port: 7777
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Theme != "latte" {
		t.Errorf("Theme = %q, want latte", cfg.Theme)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Web.Port != 7777 || cfg.Web.Bind != "0.0.0.0" {
		t.Errorf("Web = %+v", cfg.Web)
	}
	if cfg.Categories != "/tmp/cats.yaml" {
		t.Errorf("Categories = %q", cfg.Categories)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveCategoriesPath(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.ResolveCategoriesPath("/data"); got != filepath.Join("/data", "categories.yaml") {
		t.Errorf("default path = %q", got)
	}

	cfg.Categories = "/explicit/cats.yaml"
	if got := cfg.ResolveCategoriesPath("/data"); got != "/explicit/cats.yaml" {
		t.Errorf("explicit path = %q", got)
	}
}
