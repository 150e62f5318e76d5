// Package cmd - estimate command
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"roadcost/catalog"
	"roadcost/core/estimate"
	"roadcost/core/types"
	"roadcost/internal/config"
	"roadcost/internal/logging"
	"roadcost/report"
	"roadcost/volume"
)

var (
	estProjectID    string
	estAlignmentID  string
	estRegion       string
	estFormat       string
	estOutDir       string
	estContingency  float64
	estIndirect     float64
	estSkipIndirect bool
	estShowItems    bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate construction costs for a road alignment",
	Long: `Derive quantities from alignment volume data and produce a cost estimate.

The estimate is printed as a summary table and written to a report file
in the configured output directory.

Examples:
  roadcost estimate --project HWY-2095 --alignment ALT-B
  roadcost estimate --project HWY-2095 --alignment ALT-B --format pdf
  roadcost estimate --project HWY-2095 --alignment ALT-B --contingency 10 --no-indirect`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estProjectID, "project", "p", "", "project identifier (required)")
	estimateCmd.Flags().StringVarP(&estAlignmentID, "alignment", "a", "", "alignment identifier (required)")
	estimateCmd.Flags().StringVarP(&estRegion, "region", "r", "", "rate region (default from config)")
	estimateCmd.Flags().StringVarP(&estFormat, "format", "f", "", "report format (csv, excel, pdf, json)")
	estimateCmd.Flags().StringVarP(&estOutDir, "out", "o", "", "report output directory (default from config)")
	estimateCmd.Flags().Float64Var(&estContingency, "contingency", -1, "contingency percentage")
	estimateCmd.Flags().Float64Var(&estIndirect, "indirect", -1, "indirect cost percentage")
	estimateCmd.Flags().BoolVar(&estSkipIndirect, "no-indirect", false, "exclude indirect cost markup")
	estimateCmd.Flags().BoolVarP(&estShowItems, "details", "d", true, "show the itemized cost ledger")

	estimateCmd.MarkFlagRequired("project")
	estimateCmd.MarkFlagRequired("alignment")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	startTime := time.Now()
	cfg := config.Get()

	req := &estimate.Request{
		ProjectID:              estProjectID,
		AlignmentID:            estAlignmentID,
		Region:                 cfg.Estimate.Region,
		ContingencyPercentage:  cfg.Estimate.ContingencyPercentage,
		IncludeIndirectCosts:   cfg.Estimate.IncludeIndirectCosts,
		IndirectCostPercentage: cfg.Estimate.IndirectCostPercentage,
	}
	if estRegion != "" {
		req.Region = estRegion
	}
	if estContingency >= 0 {
		req.ContingencyPercentage = estContingency
	}
	if estIndirect >= 0 {
		req.IndirectCostPercentage = estIndirect
	}
	if estSkipIndirect {
		req.IncludeIndirectCosts = false
	}

	formatLabel := cfg.Estimate.ReportFormat
	if estFormat != "" {
		formatLabel = estFormat
	}
	format, err := report.ParseFormat(formatLabel)
	if err != nil {
		return err
	}

	outDir := cfg.Reports.Directory
	if estOutDir != "" {
		outDir = estOutDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	logging.Info("Starting cost estimation")

	cat := catalog.NewWithDefaults()
	estimator := estimate.New(cat, cat, volume.NewSynthetic())

	result, err := estimator.Estimate(ctx, req)
	if err != nil {
		return err
	}

	printEstimate(result)

	filename, err := report.NewRegistry().Generate(result, format, outDir)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Printf("\nReport written to %s\n", fmt.Sprintf("%s/%s", outDir, filename))
	fmt.Printf("Estimation completed in %s\n", time.Since(startTime).Round(time.Millisecond))
	return nil
}

func printEstimate(result *estimate.Result) {
	fmt.Println("┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Println("│                      ROAD COST ESTIMATION SUMMARY                       │")
	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Printf("│ %-50s %20s │\n", "Project", truncate(result.ProjectID, 20))
	fmt.Printf("│ %-50s %20s │\n", "Alignment", truncate(result.AlignmentID, 20))
	fmt.Printf("│ %-50s %20s │\n", "Road length",
		fmt.Sprintf("%.1f m", result.RoadLength.InexactFloat64()))
	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")

	if estShowItems {
		for _, item := range result.Ledger.Items {
			fmt.Printf("│ %-50s %20s │\n",
				truncate(item.ItemName, 50),
				fmt.Sprintf("$%.2f", item.Cost.InexactFloat64()))
			fmt.Printf("│   └─ %-46s %20s │\n",
				truncate(fmt.Sprintf("%s %s @ $%s", item.Quantity.StringFixed(1), item.Unit, item.UnitRate.StringFixed(2)), 46),
				string(item.Category))
		}
		fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")
	}

	for _, category := range types.Categories() {
		amount := result.Breakdown.Subtotal(category)
		if amount.IsZero() {
			continue
		}
		fmt.Printf("│ %-50s %20s │\n",
			truncate(string(category), 50),
			fmt.Sprintf("$%.2f", amount.InexactFloat64()))
	}

	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Printf("│ %-50s %20s │\n",
		"TOTAL ESTIMATED COST",
		fmt.Sprintf("$%.2f", result.TotalCost.InexactFloat64()))
	fmt.Printf("│ %-50s %20s │\n",
		"COST PER KILOMETRE",
		fmt.Sprintf("$%.2f", result.CostPerKm.InexactFloat64()))
	fmt.Println("└─────────────────────────────────────────────────────────────────────────┘")

	for _, warning := range result.Warnings {
		fmt.Printf("Warning: item %s skipped: %s\n", warning.ItemCode, warning.Reason)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
