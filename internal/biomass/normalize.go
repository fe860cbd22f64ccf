// Package biomass normalizes the wide forest-inventory survey extracts
// (one column per diameter size class) into long-format rows with product
// tiers, FIPS identifiers, and survey unit codes attached.
package biomass

import (
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/timber-cli/internal/ingest"
	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/reference"
	"github.com/sells-group/timber-cli/internal/transform"
)

// Tier selects which maturity tier of the inventory is being normalized.
type Tier string

const (
	TierMerchantable    Tier = "merchantable"
	TierPremerchantable Tier = "premerchantable"
)

// Stats counts rows dropped or flagged during normalization. Dropped
// species are expected (inventoried but unmarketable); Unknown size
// classes are surfaced because they can never match a price row.
type Stats struct {
	InputRows          int
	DroppedSpecies     int
	DroppedHardwood    int // pre-merchantable tier only
	DroppedPremerch    int // merchantable tier: 0001-0004 cells excluded
	DroppedMerch       int // pre-merchantable tier: 0005+ cells excluded
	ZeroFilledCells    int
	UnknownSizeClasses map[string]int
}

// metaColumns are the identifying columns every inventory extract must
// carry. Size-class value columns are recognized by name shape, so a
// reordered extract cannot silently misattribute volumes.
var metaColumns = []string{"EVALID", "STATECD", "COUNTYCD", "UNITCD", "SPCD", "SPGRPCD", "SPCLASS"}

// Normalize reshapes one inventory sheet into long-format biomass rows,
// filtered to the region's marketable species.
func Normalize(t *ingest.Table, region model.Region, tier Tier) ([]model.BiomassRow, *Stats, error) {
	idx, err := t.RequireColumns(metaColumns...)
	if err != nil {
		return nil, nil, err
	}
	evalidIdx, stateIdx, countyIdx, unitIdx, spcdIdx, spgrpIdx, classIdx :=
		idx[0], idx[1], idx[2], idx[3], idx[4], idx[5], idx[6]

	// Resolve size-class columns once from the header.
	type sizeColumn struct {
		idx       int
		code      string
		sizeRange string
		product   model.Product
	}
	var sizeCols []sizeColumn
	for i, name := range t.Header {
		code, sizeRange, err := transform.SplitSizeClassColumn(name)
		if err != nil {
			continue // metadata or unrelated column
		}
		sizeCols = append(sizeCols, sizeColumn{
			idx:       i,
			code:      code,
			sizeRange: sizeRange,
			product:   ProductForSizeClass(region, code),
		})
	}
	if len(sizeCols) == 0 {
		return nil, nil, eris.Errorf("biomass: %s has no size-class columns", t.Source)
	}

	marketable := reference.MarketableSpecies(region)
	if tier == TierPremerchantable {
		marketable = reference.PremerchSpecies(region)
	}

	stats := &Stats{UnknownSizeClasses: make(map[string]int)}
	log := zap.L().With(zap.String("source", t.Source), zap.String("tier", string(tier)))

	var rows []model.BiomassRow
	for _, row := range t.Rows {
		stats.InputRows++

		spcd, err := strconv.Atoi(t.Get(row, spcdIdx))
		if err != nil {
			return nil, nil, eris.Errorf("biomass: %s has malformed species code %q", t.Source, t.Get(row, spcdIdx))
		}
		class := model.SpeciesClass(t.Get(row, classIdx))
		if tier == TierPremerchantable && class == model.Hardwood {
			stats.DroppedHardwood++
			continue
		}
		if !marketable[spcd] {
			stats.DroppedSpecies++
			continue
		}

		year, err := transform.EvalYear(t.Get(row, evalidIdx))
		if err != nil {
			return nil, nil, eris.Wrapf(err, "biomass: %s", t.Source)
		}

		stateFIPS := transform.NormalizeFIPSState(t.Get(row, stateIdx))
		countyFIPS := transform.NormalizeFIPSCounty(t.Get(row, countyIdx))
		spgrp, _ := strconv.Atoi(t.Get(row, spgrpIdx))

		for _, sc := range sizeCols {
			// Each size class belongs to exactly one tier; keeping a
			// class in both would value the same stand twice.
			premerchClass := sc.product == model.ProductPremerchantable
			if tier == TierMerchantable && premerchClass {
				stats.DroppedPremerch++
				continue
			}
			if tier == TierPremerchantable && !premerchClass {
				stats.DroppedMerch++
				continue
			}

			volume := 0.0
			if cell := t.Get(row, sc.idx); cell != "" {
				v, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					stats.ZeroFilledCells++
				} else {
					volume = v
				}
			} else {
				stats.ZeroFilledCells++
			}

			if sc.product == model.ProductUnknown {
				stats.UnknownSizeClasses[sc.code]++
			}

			rows = append(rows, model.BiomassRow{
				Year:         year,
				StateFIPS:    stateFIPS,
				CountyFIPS:   countyFIPS,
				FIPS:         stateFIPS + countyFIPS,
				SurveyUnit:   transform.NormalizeSurveyUnit(t.Get(row, unitIdx)),
				SpeciesCode:  spcd,
				SpeciesGroup: spgrp,
				SpeciesClass: class,
				SizeClass:    sc.code,
				SizeRange:    transform.NormalizeSizeRange(sc.sizeRange),
				Product:      sc.product,
				Volume:       volume,
			})
		}
	}

	for code, n := range stats.UnknownSizeClasses {
		log.Warn("biomass: size class has no product mapping",
			zap.String("size_class", code), zap.Int("rows", n))
	}
	log.Info("biomass: normalized inventory sheet",
		zap.Int("input_rows", stats.InputRows),
		zap.Int("output_rows", len(rows)),
		zap.Int("dropped_species", stats.DroppedSpecies),
	)
	return rows, stats, nil
}

// ProductForSizeClass maps a 4-digit diameter size-class code to a product
// tier. Size classes 1-4 are pre-merchantable in both regions; the
// pulpwood/sawtimber cutoff differs: the South saws from class 12 (11"+),
// the Great Lakes from class 20 (20"+). Codes outside the known ranges map
// to Unknown and are surfaced, never silently joined to a price.
func ProductForSizeClass(region model.Region, code string) model.Product {
	n, err := strconv.Atoi(code)
	if err != nil || n < 1 {
		return model.ProductUnknown
	}

	sawCutoff := 12
	if region == model.RegionGreatLakes {
		sawCutoff = 20
	}

	switch {
	case n <= 4:
		return model.ProductPremerchantable
	case n < sawCutoff:
		return model.ProductPulpwood
	case n <= 40:
		return model.ProductSawtimber
	default:
		return model.ProductUnknown
	}
}
