package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/region"
	"github.com/sells-group/timber-cli/internal/store"
)

var (
	processRegions []string
	processDemo    bool
	processNoStore bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the valuation pipeline for one or both regions",
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringSliceVar(&processRegions, "regions", []string{"south", "greatlakes"},
		"regions to process (south, greatlakes)")
	processCmd.Flags().BoolVar(&processDemo, "demo", false,
		"use the built-in demo dataset instead of the configured source extracts")
	processCmd.Flags().BoolVar(&processNoStore, "no-store", false,
		"skip recording the run in the history database")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	regions := make([]model.Region, 0, len(processRegions))
	for _, name := range processRegions {
		r, err := model.ParseRegion(name)
		if err != nil {
			return err
		}
		regions = append(regions, r)
	}

	var st *store.Store
	if !processNoStore {
		var err error
		st, err = store.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(cmd.Context()); err != nil {
			return err
		}
	}

	opts := region.Options{Config: cfg, Store: st, Demo: processDemo}

	results := make([]*region.Result, len(regions))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, r := range regions {
		g.Go(func() error {
			var res *region.Result
			var err error
			switch r {
			case model.RegionGreatLakes:
				res, err = region.ProcessGreatLakes(ctx, opts)
			default:
				res, err = region.ProcessSouth(ctx, opts)
			}
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		s := res.Summary
		fmt.Printf("%-11s %s\n", res.Region, res.OutputPath)
		fmt.Printf("  rows %d  matched %d  fallback %d  unpriced %d  unmapped-region %d\n",
			s.InputRows, s.Matched, s.Fallback, s.Unpriced, s.UnmappedRegion)
	}
	return nil
}
