// Package region orchestrates the full pipeline for one market region:
// crosswalks, price normalization, biomass normalization, the valuation
// join, and the processed-table outputs.
package region

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/timber-cli/internal/biomass"
	"github.com/sells-group/timber-cli/internal/config"
	"github.com/sells-group/timber-cli/internal/crosswalk"
	"github.com/sells-group/timber-cli/internal/ingest"
	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/price"
	"github.com/sells-group/timber-cli/internal/store"
	"github.com/sells-group/timber-cli/internal/valuation"
)

// Options configures a processing run. Store may be nil, in which case the
// run is not recorded. Demo substitutes the built-in demo dataset for
// every source extract; without it a missing extract is fatal.
type Options struct {
	Config *config.Config
	Store  *store.Store
	Demo   bool
}

// Result is the outcome of one region run.
type Result struct {
	Region     model.Region
	RunID      string
	Rows       []model.ValuationRow
	Summary    *valuation.Summary
	OutputPath string
}

// outputNames maps a region to its processed table file name.
var outputNames = map[model.Region]string{
	model.RegionSouth:      "table_south.csv",
	model.RegionGreatLakes: "table_gl.csv",
}

// ProcessSouth runs the Southern pipeline end to end.
func ProcessSouth(ctx context.Context, opts Options) (*Result, error) {
	return process(ctx, model.RegionSouth, opts)
}

// ProcessGreatLakes runs the Great Lakes pipeline end to end.
func ProcessGreatLakes(ctx context.Context, opts Options) (*Result, error) {
	return process(ctx, model.RegionGreatLakes, opts)
}

func process(ctx context.Context, region model.Region, opts Options) (*Result, error) {
	log := zap.L().With(zap.String("region", string(region)))

	var runID string
	if opts.Store != nil {
		run, err := opts.Store.CreateRun(ctx, region)
		if err != nil {
			return nil, err
		}
		runID = run.ID
	}

	result, err := runPipeline(ctx, region, opts)
	if opts.Store != nil && runID != "" {
		if err != nil {
			if ferr := opts.Store.FailRun(ctx, runID, err.Error()); ferr != nil {
				log.Warn("store: failed to record run failure", zap.Error(ferr))
			}
		} else {
			s := result.Summary
			if serr := opts.Store.SaveValuation(ctx, region, result.Rows); serr != nil {
				return nil, serr
			}
			if cerr := opts.Store.CompleteRun(ctx, runID, s.InputRows, s.Matched,
				s.Fallback, s.Unpriced, s.UnmappedRegion, result.OutputPath); cerr != nil {
				return nil, cerr
			}
		}
	}
	if err != nil {
		return nil, err
	}
	result.RunID = runID
	return result, nil
}

func runPipeline(ctx context.Context, region model.Region, opts Options) (*Result, error) {
	cfg := opts.Config
	log := zap.L().With(zap.String("region", string(region)))

	mapping, err := buildMapping(region, opts)
	if err != nil {
		return nil, err
	}
	log.Info("crosswalk: price regions mapped", zap.Int("assignments", mapping.Len()))

	prices, premerchPrices, err := loadPrices(region, opts)
	if err != nil {
		return nil, err
	}

	merch, premerch, err := loadBiomass(region, opts)
	if err != nil {
		return nil, err
	}

	logHarvestCoverage(region, opts)

	buckets, err := crosswalk.LoadBucketMap(region, cfg.Pipeline.BucketConfig)
	if err != nil {
		return nil, err
	}

	rows, summary, err := valuation.Compute(valuation.Inputs{
		Merchantable:    merch,
		Premerchantable: premerch,
		Prices:          prices,
		PremerchPrices:  premerchPrices,
		Mapping:         mapping,
		Buckets:         buckets,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "region: canceled")
	}

	outputPath := cfg.Data.ProcessedPath(outputNames[region])
	if err := WriteValuationCSV(outputPath, rows); err != nil {
		return nil, err
	}
	log.Info("region: processed table written",
		zap.String("path", outputPath), zap.Int("rows", len(rows)))

	return &Result{
		Region:     region,
		Rows:       rows,
		Summary:    summary,
		OutputPath: outputPath,
	}, nil
}

func buildMapping(region model.Region, opts Options) (*model.PriceRegionMapping, error) {
	if opts.Demo {
		return crosswalk.BuildPriceRegions(region, demoTMSCounties(), demoTMNCounties(), demoFIAUnits())
	}
	cfg := opts.Config.Data
	tms, err := loadTable(cfg.RawPath(cfg.TMSCounties))
	if err != nil {
		return nil, err
	}
	tmn, err := loadTable(cfg.RawPath(cfg.TMNCounties))
	if err != nil {
		return nil, err
	}
	units, err := loadTable(cfg.RawPath(cfg.FIAUnits))
	if err != nil {
		return nil, err
	}
	return crosswalk.BuildPriceRegions(region, tms, tmn, units)
}

func loadPrices(region model.Region, opts Options) (prices, premerch []model.PriceRow, err error) {
	cfg := opts.Config

	var tbl *ingest.Table
	if region == model.RegionGreatLakes {
		if opts.Demo {
			tbl = demoGLPrices()
		} else if tbl, err = loadTable(cfg.Data.RawPath(cfg.Data.GLPrices)); err != nil {
			return nil, nil, err
		}
		rows, _, err := price.NormalizeGreatLakes(tbl)
		if err != nil {
			return nil, nil, err
		}
		// No pre-merchantable market exists in the Great Lakes; only
		// merchantable stock is priced.
		return rows, nil, nil
	}

	if opts.Demo {
		tbl = demoSouthPrices()
	} else if tbl, err = loadTable(cfg.Data.RawPath(cfg.Data.SouthPrices)); err != nil {
		return nil, nil, err
	}
	rows, _, err := price.NormalizeSouth(tbl)
	if err != nil {
		return nil, nil, err
	}
	params := price.PremerchParams{
		DiscountRate:    cfg.Pipeline.DiscountRate,
		MerchantableAge: cfg.Pipeline.MerchantableAge,
	}
	return rows, price.ExtrapolatePremerch(rows, params), nil
}

func loadBiomass(region model.Region, opts Options) (merch, premerch []model.BiomassRow, err error) {
	cfg := opts.Config.Data

	var merchTbl *ingest.Table
	if opts.Demo {
		merchTbl = demoSouthMerchBiomass()
		if region == model.RegionGreatLakes {
			merchTbl = demoGLMerchBiomass()
		}
	} else if merchTbl, err = loadTable(cfg.RawPath(cfg.MerchBiomass)); err != nil {
		return nil, nil, err
	}
	merch, _, err = biomass.Normalize(merchTbl, region, biomass.TierMerchantable)
	if err != nil {
		return nil, nil, err
	}

	if region == model.RegionGreatLakes {
		return merch, nil, nil
	}

	var preTbl *ingest.Table
	if opts.Demo {
		preTbl = demoSouthPremerchBiomass()
	} else if preTbl, err = loadTable(cfg.RawPath(cfg.PremerchBiomass)); err != nil {
		return nil, nil, err
	}
	premerch, _, err = biomass.Normalize(preTbl, region, biomass.TierPremerchantable)
	if err != nil {
		return nil, nil, err
	}
	return merch, premerch, nil
}

// logHarvestCoverage is advisory: the harvest-removals extract is optional
// and only feeds the allow-list coverage log.
func logHarvestCoverage(region model.Region, opts Options) {
	if opts.Demo {
		return
	}
	cfg := opts.Config.Data
	tbl, err := loadTable(cfg.RawPath(cfg.Harvest))
	if err != nil {
		if eris.Is(err, model.ErrSourceFileMissing) {
			zap.L().Debug("harvest: extract not present, skipping coverage check",
				zap.String("path", cfg.RawPath(cfg.Harvest)))
			return
		}
		zap.L().Warn("harvest: extract unreadable", zap.Error(err))
		return
	}
	harvested, err := ParseHarvestedSpecies(tbl)
	if err != nil {
		zap.L().Warn("harvest: extract unparsable", zap.Error(err))
		return
	}
	LogAllowListCoverage(region, harvested)
}

// loadTable reads a source extract, dispatching on extension.
func loadTable(path string) (*ingest.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ingest.ReadXLSX(path, ingest.XLSXOptions{})
	default:
		return ingest.ReadCSV(path)
	}
}
