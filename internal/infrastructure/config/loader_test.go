package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadSeedsDefaultsWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be seeded: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("seeded config differs from defaults (-want +got):\n%s", diff)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "history:\n  enabled: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.IsHistoryEnabled() {
		t.Fatal("expected history to stay enabled")
	}
	if cfg.PythonBinary() != "python3" {
		t.Fatalf("PythonBinary() = %q, want python3", cfg.PythonBinary())
	}
	if cfg.DefaultLanguage() != "en" {
		t.Fatalf("DefaultLanguage() = %q, want en", cfg.DefaultLanguage())
	}
	if cfg.HistoryRetentionDays() != 30 {
		t.Fatalf("HistoryRetentionDays() = %d, want 30", cfg.HistoryRetentionDays())
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("engine: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
