// Package cmd provides the CLI commands for roadcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roadcost/internal/config"
	"roadcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "roadcost",
	Short: "Estimate construction costs for road design projects",
	Long: `roadcost is a construction cost estimation tool for road alignments.

It derives work quantities from earthwork volume data, prices them
against a regional material rate catalog and produces itemized
estimates with category breakdowns and markup lines.

Examples:
  roadcost estimate --project HWY-2095 --alignment ALT-B
  roadcost estimate --project HWY-2095 --alignment ALT-B --format pdf
  roadcost rates list --region default
  roadcost rates import rates/mountain.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.roadcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("roadcost version 1.0.0")
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		fmt.Printf("server.addr:                  %s\n", cfg.Server.Addr)
		fmt.Printf("database.url:                 %s\n", cfg.Database.URL)
		fmt.Printf("reports.directory:            %s\n", cfg.Reports.Directory)
		fmt.Printf("estimate.region:              %s\n", cfg.Estimate.Region)
		fmt.Printf("estimate.contingency_pct:     %.1f\n", cfg.Estimate.ContingencyPercentage)
		fmt.Printf("estimate.indirect_pct:        %.1f\n", cfg.Estimate.IndirectCostPercentage)
		fmt.Printf("estimate.include_indirect:    %t\n", cfg.Estimate.IncludeIndirectCosts)
		fmt.Printf("estimate.report_format:       %s\n", cfg.Estimate.ReportFormat)
		return nil
	},
}
