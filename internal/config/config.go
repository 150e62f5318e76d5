// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"roadcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains API server settings
	Server ServerConfig `json:"server"`

	// Database contains reference-data store settings
	Database DatabaseConfig `json:"database"`

	// Reports contains report output settings
	Reports ReportsConfig `json:"reports"`

	// Estimate contains estimation defaults
	Estimate EstimateConfig `json:"estimate"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// DatabaseConfig contains reference-data store settings
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string. Empty means the built-in
	// in-memory catalog is used instead.
	URL string `json:"url,omitempty"`

	// SeedDefaults loads the default rates and cost items into an empty store
	SeedDefaults bool `json:"seed_defaults"`
}

// ReportsConfig contains report output settings
type ReportsConfig struct {
	// Directory is where generated reports are written
	Directory string `json:"directory"`

	// BaseURL is the public URL prefix for report downloads
	BaseURL string `json:"base_url"`
}

// EstimateConfig contains estimation defaults
type EstimateConfig struct {
	// Region is the default rate region
	Region string `json:"region"`

	// ContingencyPercentage is the default contingency markup
	ContingencyPercentage float64 `json:"contingency_percentage"`

	// IndirectCostPercentage is the default indirect-cost markup
	IndirectCostPercentage float64 `json:"indirect_cost_percentage"`

	// IncludeIndirectCosts controls whether markups apply by default
	IncludeIndirectCosts bool `json:"include_indirect_costs"`

	// ReportFormat is the default report format
	ReportFormat string `json:"report_format"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8000",
		},
		Database: DatabaseConfig{
			SeedDefaults: true,
		},
		Reports: ReportsConfig{
			Directory: "./reports",
			BaseURL:   "/reports",
		},
		Estimate: EstimateConfig{
			Region:                 "default",
			ContingencyPercentage:  15.0,
			IndirectCostPercentage: 25.0,
			IncludeIndirectCosts:   true,
			ReportFormat:           "excel",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
