//-------------------------------------------------------------------------
//
// Shipment Warehouse ETL
//
// Portions copyright (c) 2025 - 2026, ParcelHQ, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for shipment-warehouse.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values. The config file is also
// where database credentials live, so the tool never prompts for them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DateLayout is the calendar date format used in config values.
const DateLayout = "2006-01-02"

// Config holds all configuration for shipment-warehouse.
type Config struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the raw-data generation phase.
	Generate GenerateConfig `mapstructure:"generate"`

	// Load holds configuration for the warehouse load phases.
	Load LoadConfig `mapstructure:"load"`

	// InitDB holds configuration for the initdb subcommand.
	InitDB InitDBConfig `mapstructure:"initdb"`
}

// GenerateConfig holds configuration for synthetic raw-data generation.
type GenerateConfig struct {
	// Rows is the number of raw shipment records to generate.
	Rows int `mapstructure:"rows"`

	// Seed seeds the generator for reproducible data sets (0 = time-based).
	Seed uint64 `mapstructure:"seed"`

	// StartDate is the earliest possible ship date (YYYY-MM-DD).
	StartDate string `mapstructure:"start_date"`
}

// LoadConfig holds configuration for the dimension and fact load phases.
type LoadConfig struct {
	// BatchSize is the number of insert statements queued per database
	// round trip.
	BatchSize int `mapstructure:"batch_size"`
}

// InitDBConfig holds configuration for schema initialization.
type InitDBConfig struct {
	// DropExisting drops the existing star schema before recreating it.
	DropExisting bool `mapstructure:"drop_existing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Rows:      10000,
			Seed:      0,
			StartDate: "2023-01-01",
		},
		Load: LoadConfig{
			BatchSize: 1000,
		},
		InitDB: InitDBConfig{
			DropExisting: false,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./shipment-warehouse.yaml
// 3. ~/.config/shipment-warehouse/shipment-warehouse.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("shipment-warehouse")
	v.SetConfigType("yaml")

	// Add config paths
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "shipment-warehouse"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found, unless one was named explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ParseStartDate parses the configured generation start date.
func (c *GenerateConfig) ParseStartDate() (time.Time, error) {
	t, err := time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start_date %q: %w", c.StartDate, err)
	}
	return t, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return nil
}

// ValidateRun checks configuration required for the run command.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Generate.Rows < 1 {
		return fmt.Errorf("generate.rows must be at least 1")
	}
	if _, err := c.Generate.ParseStartDate(); err != nil {
		return err
	}
	if c.Load.BatchSize < 1 {
		return fmt.Errorf("load.batch_size must be at least 1")
	}
	return nil
}

// ValidateInitDB checks configuration required for the initdb command.
func (c *Config) ValidateInitDB() error {
	return c.Validate()
}
