package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Processing.Threads < 1 {
		t.Errorf("default Threads = %d, want >= 1", cfg.Processing.Threads)
	}
	if !cfg.Processing.BackgroundOnly {
		t.Error("default BackgroundOnly = false, want true")
	}
	if !cfg.Processing.ErodeBorder {
		t.Error("default ErodeBorder = false, want true")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Processing.Threads != DefaultConfig().Processing.Threads {
		t.Error("missing file did not produce defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "fastmorph.yaml")

	cfg := DefaultConfig()
	cfg.Processing.Threads = 3
	cfg.Processing.BackgroundOnly = false
	cfg.Output.Stats = true

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Processing.Threads != 3 {
		t.Errorf("Threads = %d, want 3", loaded.Processing.Threads)
	}
	if loaded.Processing.BackgroundOnly {
		t.Error("BackgroundOnly = true, want false")
	}
	if !loaded.Output.Stats {
		t.Error("Stats = false, want true")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("processing: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.yaml")
	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("CreateDefaultConfigFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
}
