package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadAppConfig_MissingFile tests that the defaults apply without a file
func TestLoadAppConfig_MissingFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.yml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if cfg.PTLines.End != 86400 || cfg.PTLines.Period != 600 || cfg.PTLines.Seed != 42 {
		t.Errorf("unexpected pt defaults: %+v", cfg.PTLines)
	}
	if cfg.Rerouters.MaxAlternatives != 10 {
		t.Errorf("unexpected rerouter defaults: %+v", cfg.Rerouters)
	}
	if cfg.Population.Density != 3000.0 {
		t.Errorf("unexpected density default: %v", cfg.Population.Density)
	}
	if cfg.Tools.Python != "python3" {
		t.Errorf("unexpected interpreter default: %q", cfg.Tools.Python)
	}
	t.Logf("✓ Defaults applied: %+v", cfg)
}

// TestLoadAppConfig_PartialFile tests that an override keeps the other defaults
func TestLoadAppConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "ptlines:\n  period: 300\npopulation:\n  density: 1500.0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.PTLines.Period != 300 {
		t.Errorf("period = %d, want 300", cfg.PTLines.Period)
	}
	if cfg.PTLines.End != 86400 {
		t.Errorf("end = %d, want the 86400 default", cfg.PTLines.End)
	}
	if cfg.Population.Density != 1500.0 {
		t.Errorf("density = %v, want 1500.0", cfg.Population.Density)
	}
	t.Logf("✓ Partial file merged over defaults")
}

// TestLoadAppConfig_InvalidYAML tests error handling for broken YAML
func TestLoadAppConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("ptlines: [[["), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("broken YAML should return an error")
	}
}

// TestLoadAppConfig_Validation tests that out-of-range values are rejected
func TestLoadAppConfig_Validation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("ptlines:\n  period: -5\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("negative period should fail validation")
	} else {
		t.Logf("✓ Validation rejected bad value: %v", err)
	}
}
