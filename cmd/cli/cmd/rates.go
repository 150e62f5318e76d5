// Package cmd - rates reference data management
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"roadcost/catalog"
	"roadcost/catalog/hclrates"
	"roadcost/core/types"
	"roadcost/db"
	"roadcost/internal/config"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Material rate catalog management",
	Long: `Inspect and maintain the material rate catalog.

With a configured database the commands operate on stored reference
data; without one, listing shows the built-in default rates and
importing only validates the file.`,
}

var ratesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List material rates for a region",
	RunE:  runRatesList,
}

var ratesImportCmd = &cobra.Command{
	Use:   "import <rates-file.hcl>",
	Short: "Import material rates from an HCL file",
	Long: `Import material rates from an HCL rates file.

Each region block carries rate blocks with unit, rate and an optional
validity window. Imported rates upsert by code, region and start of
validity; existing entries are never silently shadowed.`,
	Args: cobra.ExactArgs(1),
	RunE: runRatesImport,
}

var ratesRegion string

func init() {
	rootCmd.AddCommand(ratesCmd)
	ratesCmd.AddCommand(ratesListCmd)
	ratesCmd.AddCommand(ratesImportCmd)

	ratesListCmd.Flags().StringVarP(&ratesRegion, "region", "r", "default", "rate region")
}

func runRatesList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	var (
		entries []types.RateEntry
		err     error
	)
	if cfg.Database.URL != "" {
		store, openErr := db.Open(ctx, cfg.Database.URL)
		if openErr != nil {
			return fmt.Errorf("open database: %w", openErr)
		}
		defer store.Close()
		entries, err = store.Entries(ctx, ratesRegion)
	} else {
		entries, err = catalog.NewWithDefaults().Entries(ctx, ratesRegion)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No rates found for region %q\n", ratesRegion)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tUNIT\tRATE\tREGION")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			entry.Code, entry.Name, entry.Unit, entry.Rate.StringFixed(2), entry.Region)
	}
	return w.Flush()
}

func runRatesImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	entries, err := hclrates.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Parsed %d rates from %s\n", len(entries), args[0])

	if cfg.Database.URL == "" {
		fmt.Println("No database configured; file validated only.")
		return nil
	}

	store, err := db.Open(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	if err := store.PutRates(ctx, entries); err != nil {
		return fmt.Errorf("store rates: %w", err)
	}
	fmt.Printf("Imported %d rates\n", len(entries))
	return nil
}
