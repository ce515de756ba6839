package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "treecompare.yaml")

	configContent := `skip:
  - "*.tmp"
  - "*.log"
  - .git
  - node_modules
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := []string{"*.tmp", "*.log", ".git", "node_modules"}
	if len(cfg.Skip) != len(expected) {
		t.Fatalf("Expected %d skip patterns, got %d", len(expected), len(cfg.Skip))
	}
	for i, want := range expected {
		if cfg.Skip[i] != want {
			t.Errorf("Skip[%d]: expected %q, got %q", i, want, cfg.Skip[i])
		}
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// The path always comes from an explicit --config flag, so a missing
	// file must surface as an error rather than some substitute pattern set.
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should return error for a missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalid := "skip:\n  - ok\n - misindented\n\t- tabs\n"
	if err := os.WriteFile(configPath, []byte(invalid), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load should return error for invalid YAML")
	}
}

func TestLoad_EmptyConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "empty.yaml")

	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed for empty config: %v", err)
	}

	if cfg.Skip == nil {
		t.Error("Skip should not be nil")
	}
	if len(cfg.Skip) != 0 {
		t.Errorf("Expected no skip patterns, got %v", cfg.Skip)
	}
}
