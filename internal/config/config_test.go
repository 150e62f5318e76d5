package config_test

import (
	"path/filepath"
	"testing"

	"roadcost/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	if cfg.Server.Addr != ":8000" {
		t.Errorf("expected default addr :8000, got %s", cfg.Server.Addr)
	}
	if cfg.Estimate.Region != "default" {
		t.Errorf("expected default region, got %s", cfg.Estimate.Region)
	}
	if cfg.Estimate.ContingencyPercentage != 15 {
		t.Errorf("expected default contingency 15, got %v", cfg.Estimate.ContingencyPercentage)
	}
	if cfg.Estimate.IndirectCostPercentage != 25 {
		t.Errorf("expected default indirect 25, got %v", cfg.Estimate.IndirectCostPercentage)
	}
	if !cfg.Estimate.IncludeIndirectCosts {
		t.Error("expected indirect costs included by default")
	}
	if cfg.Estimate.ReportFormat != "excel" {
		t.Errorf("expected default report format excel, got %s", cfg.Estimate.ReportFormat)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "roadcost.json")

	cfg := config.Default()
	cfg.Server.Addr = ":9100"
	cfg.Estimate.Region = "mountain"
	cfg.Estimate.ContingencyPercentage = 10

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Addr != ":9100" {
		t.Errorf("expected addr :9100, got %s", loaded.Server.Addr)
	}
	if loaded.Estimate.Region != "mountain" {
		t.Errorf("expected region mountain, got %s", loaded.Estimate.Region)
	}
	if loaded.Estimate.ContingencyPercentage != 10 {
		t.Errorf("expected contingency 10, got %v", loaded.Estimate.ContingencyPercentage)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("expected default config, got addr %s", cfg.Server.Addr)
	}
}
