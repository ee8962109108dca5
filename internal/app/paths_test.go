package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saadjs/dayledger/internal/app"
)

func TestDefaultPathsShareAppDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	dbPath, err := app.DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	cfgPath, err := app.DefaultConfigPath()
	if err != nil {
		t.Fatalf("default config path: %v", err)
	}
	if filepath.Dir(dbPath) != filepath.Dir(cfgPath) {
		t.Fatalf("expected db and config in the same dir, got %s and %s", dbPath, cfgPath)
	}
	if filepath.Base(filepath.Dir(dbPath)) != "dayledger" {
		t.Fatalf("expected dayledger app dir, got %s", dbPath)
	}
}

func TestEnsureDBDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "dayledger.db")
	if err := app.EnsureDBDir(path); err != nil {
		t.Fatalf("ensure db dir: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Fatalf("expected directory to exist: %v", err)
	}
}
