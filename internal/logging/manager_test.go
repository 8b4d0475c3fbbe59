package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewManager_RequiresFilePath(t *testing.T) {
	if _, err := NewManager(Config{}); err == nil {
		t.Fatal("expected error for empty FilePath")
	}
}

func TestManager_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feeddeck.log")

	m, err := NewManager(Config{FilePath: path, Level: "debug"})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer func() { _ = m.Close() }()

	m.For("tui").Info("carousel ready", "columns", 5)
	_ = m.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "carousel ready") {
		t.Errorf("log file missing message: %s", out)
	}
	if !strings.Contains(out, `"columns":5`) {
		t.Errorf("log file missing field: %s", out)
	}
	if !strings.Contains(out, "tui") {
		t.Errorf("log file missing scope: %s", out)
	}
}

func TestManager_ForCachesLoggers(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(Config{FilePath: filepath.Join(dir, "x.log")})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer func() { _ = m.Close() }()

	if m.For("web") != m.For("web") {
		t.Error("same scope should return the cached logger")
	}
	if m.For("web") == m.For("tui") {
		t.Error("different scopes should return different loggers")
	}
}

func TestManager_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lv.log")
	m, err := NewManager(Config{FilePath: path, Level: "warn"})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer func() { _ = m.Close() }()

	m.For("app").Info("below threshold")
	m.For("app").Warn("at threshold")
	_ = m.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "below threshold") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(string(data), "at threshold") {
		t.Error("warn entry missing")
	}
}

func TestNopLogger_DoesNotPanic(t *testing.T) {
	l := NopLogger()
	l.Debug("a")
	l.Info("b", "k", 1)
	l.Warn("c")
	l.Error("d")
	l.With("k", "v").Info("e")
}
