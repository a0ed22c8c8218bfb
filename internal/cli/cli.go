//-------------------------------------------------------------------------
//
// Shipment Warehouse ETL
//
// Portions copyright (c) 2025 - 2026, ParcelHQ, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for shipment-warehouse.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/parcelhq/shipment-warehouse/internal/config"
	"github.com/parcelhq/shipment-warehouse/internal/logging"
	"github.com/parcelhq/shipment-warehouse/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "shipment-warehouse",
		Short: "Batch ETL pipeline for a shipment star-schema warehouse",
		Long: `shipment-warehouse is a CLI tool that synthesizes a messy shipment
extract, cleans and transforms it, and loads it into a PostgreSQL star
schema (one fact table, three dimension tables).

The load is idempotent: re-running the pipeline against the same database
never duplicates dimension or fact rows.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./shipment-warehouse.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initDBCmd)
	rootCmd.AddCommand(runCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
