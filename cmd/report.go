package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/region"
	"github.com/sells-group/timber-cli/internal/valuation"
)

var reportRegion string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a processed region table by state, species, and product",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportRegion, "region", "south", "region table to summarize (south, greatlakes)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	r, err := model.ParseRegion(reportRegion)
	if err != nil {
		return err
	}

	name := "table_south.csv"
	if r == model.RegionGreatLakes {
		name = "table_gl.csv"
	}
	rows, err := region.ReadValuationCSV(cfg.Data.ProcessedPath(name))
	if err != nil {
		return err
	}

	rollup := valuation.Rollup(rows)
	title := cases.Title(language.AmericanEnglish)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tSPECIES\tCLASS\tPRODUCT\tVOLUME (Mt)\tVALUE ($B)\tUNVALUED")
	for _, row := range rollup {
		species := title.String(row.SpeciesName)
		if species == "" {
			species = fmt.Sprintf("SPCD %d", row.SpeciesCode)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.6f\t%.6f\t%d\n",
			row.StateAbbr, species, row.SpeciesClass, row.Product,
			row.Megatonnes, row.Billions, row.UnvaluedRows)
	}
	return w.Flush()
}
