// Package valuation joins normalized biomass rows to normalized stumpage
// prices and produces the final region valuation table.
package valuation

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/timber-cli/internal/crosswalk"
	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/reference"
)

// Inputs carries everything the join needs. Merchantable rows join to
// Prices on (state, price region, bucket, product); pre-merchantable rows
// join to PremerchPrices on (state, price region, size class).
type Inputs struct {
	Merchantable    []model.BiomassRow
	Premerchantable []model.BiomassRow
	Prices          []model.PriceRow
	PremerchPrices  []model.PriceRow
	Mapping         *model.PriceRegionMapping
	Buckets         crosswalk.BucketMap
}

// Summary accounts for every input biomass row exactly once:
// Matched + Fallback + Unpriced == InputRows always holds.
type Summary struct {
	InputRows      int
	Matched        int
	Fallback       int
	Unpriced       int
	UnmappedRegion int
}

// priceKey is the merchantable join grain.
type priceKey struct {
	state   string
	region  string
	bucket  string
	product model.Product
}

// premerchKey joins immature stock by diameter class instead of bucket,
// since the synthetic prices are per size class.
type premerchKey struct {
	state     string
	region    string
	sizeClass string
}

// classKey is the grain of the fallback average.
type classKey struct {
	class   model.SpeciesClass
	product model.Product
}

// Compute runs the full join. Rows that miss both the direct join and the
// fallback average keep a nil price and value; nothing is dropped, so the
// output row count always equals the input row count.
func Compute(in Inputs) ([]model.ValuationRow, *Summary, error) {
	byKey := make(map[priceKey]float64, len(in.Prices))
	for _, p := range in.Prices {
		byKey[priceKey{p.StateFIPS, p.PriceRegion, p.Bucket, p.Product}] = p.CuftPrice
	}
	bySize := make(map[premerchKey]float64, len(in.PremerchPrices))
	for _, p := range in.PremerchPrices {
		bySize[premerchKey{p.StateFIPS, p.PriceRegion, p.SizeClass}] = p.CuftPrice
	}

	summary := &Summary{}
	rows := make([]model.ValuationRow, 0, len(in.Merchantable)+len(in.Premerchantable))
	var unmatched []int // indexes into rows awaiting the fallback pass
	fallbackSum := make(map[classKey]float64)
	fallbackCount := make(map[classKey]int)

	attach := func(b model.BiomassRow, premerch bool) {
		summary.InputRows++

		priceRegion, ok := in.Mapping.Lookup(b.StateFIPS, b.SurveyUnit)
		if !ok {
			summary.UnmappedRegion++
		}

		row := model.ValuationRow{
			StateFIPS:    b.StateFIPS,
			SurveyUnit:   b.SurveyUnit,
			FIPS:         b.FIPS,
			PriceRegion:  priceRegion,
			SpeciesCode:  b.SpeciesCode,
			SpeciesGroup: b.SpeciesGroup,
			SpeciesClass: b.SpeciesClass,
			Product:      b.Product,
			SizeClass:    b.SizeClass,
			SizeRange:    b.SizeRange,
			Volume:       b.Volume,
		}
		if name, ok := reference.SpeciesName(b.SpeciesCode); ok {
			row.SpeciesName = name
		}

		var price float64
		var matched bool
		if ok {
			if premerch {
				price, matched = bySize[premerchKey{b.StateFIPS, priceRegion, b.SizeClass}]
			} else {
				price, matched = byKey[priceKey{b.StateFIPS, priceRegion, in.Buckets[b.SpeciesClass], b.Product}]
			}
		}

		if matched {
			p := price
			v := b.Volume * p
			row.CuftPrice, row.Value = &p, &v
			row.PriceSource = model.PriceMatched
			summary.Matched++
			k := classKey{b.SpeciesClass, b.Product}
			fallbackSum[k] += p
			fallbackCount[k]++
		} else {
			row.PriceSource = model.PriceMissing
			unmatched = append(unmatched, len(rows))
		}
		rows = append(rows, row)
	}

	for _, b := range in.Merchantable {
		attach(b, false)
	}
	for _, b := range in.Premerchantable {
		attach(b, true)
	}

	// Fallback pass: fill unmatched rows with the mean matched price for
	// the same species class and product. The mean is computed over the
	// whole table, so it is stable regardless of row order.
	for _, i := range unmatched {
		r := &rows[i]
		k := classKey{r.SpeciesClass, r.Product}
		n := fallbackCount[k]
		if n == 0 {
			summary.Unpriced++
			continue
		}
		p := fallbackSum[k] / float64(n)
		v := r.Volume * p
		r.CuftPrice, r.Value = &p, &v
		r.PriceSource = model.PriceFallback
		summary.Fallback++
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.StateFIPS != b.StateFIPS {
			return a.StateFIPS < b.StateFIPS
		}
		if a.SurveyUnit != b.SurveyUnit {
			return a.SurveyUnit < b.SurveyUnit
		}
		if a.PriceRegion != b.PriceRegion {
			return a.PriceRegion < b.PriceRegion
		}
		if a.SpeciesCode != b.SpeciesCode {
			return a.SpeciesCode < b.SpeciesCode
		}
		if a.SpeciesGroup != b.SpeciesGroup {
			return a.SpeciesGroup < b.SpeciesGroup
		}
		if a.Product != b.Product {
			return a.Product < b.Product
		}
		return a.SizeClass < b.SizeClass
	})

	if summary.Unpriced > 0 {
		zap.L().Warn("valuation: rows left unpriced after fallback",
			zap.Int("unpriced", summary.Unpriced),
			zap.Int("input_rows", summary.InputRows))
	}
	zap.L().Info("valuation: join complete",
		zap.Int("input_rows", summary.InputRows),
		zap.Int("matched", summary.Matched),
		zap.Int("fallback", summary.Fallback),
		zap.Int("unpriced", summary.Unpriced),
		zap.Int("unmapped_region", summary.UnmappedRegion))
	return rows, summary, nil
}
