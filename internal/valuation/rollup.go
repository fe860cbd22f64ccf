package valuation

import (
	"sort"

	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/reference"
	"github.com/sells-group/timber-cli/internal/transform"
)

// RollupRow is one line of the by-product pilot table: a state x species
// aggregate for a single product, with volume in megatonnes and value in
// billions of dollars.
type RollupRow struct {
	StateAbbr    string
	SpeciesCode  int
	SpeciesName  string
	SpeciesClass string // Coniferous / Non-coniferous
	Product      model.Product
	Megatonnes   float64
	Billions     float64
	UnvaluedRows int
}

// renderClass translates the inventory classification into the
// presentation terms the pilot tables use.
func renderClass(class model.SpeciesClass) string {
	if class == model.Softwood {
		return "Coniferous"
	}
	return "Non-coniferous"
}

// Rollup aggregates a valuation table into the per-state, per-species
// pulpwood and sawtimber summary. Rows without a value still contribute
// volume; they are counted so the report can flag partial coverage.
func Rollup(rows []model.ValuationRow) []RollupRow {
	type key struct {
		state   string
		spcd    int
		product model.Product
	}
	acc := make(map[key]*RollupRow)

	for _, r := range rows {
		if r.Product != model.ProductPulpwood && r.Product != model.ProductSawtimber {
			continue
		}
		k := key{r.StateFIPS, r.SpeciesCode, r.Product}
		agg, ok := acc[k]
		if !ok {
			abbr, _ := reference.StateAbbr(r.StateFIPS)
			name := r.SpeciesName
			if name == "" {
				// Species outside the name dictionary still get a
				// readable label from their FIA group.
				if group, ok := reference.SpeciesGroupName(r.SpeciesGroup); ok {
					name = group
				}
			}
			agg = &RollupRow{
				StateAbbr:    abbr,
				SpeciesCode:  r.SpeciesCode,
				SpeciesName:  name,
				SpeciesClass: renderClass(r.SpeciesClass),
				Product:      r.Product,
			}
			acc[k] = agg
		}
		agg.Megatonnes += transform.ToMegatonnes(r.Volume)
		if r.Value != nil {
			agg.Billions += transform.ToBillions(*r.Value)
		} else {
			agg.UnvaluedRows++
		}
	}

	out := make([]RollupRow, 0, len(acc))
	for _, agg := range acc {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.StateAbbr != b.StateAbbr {
			return a.StateAbbr < b.StateAbbr
		}
		if a.Product != b.Product {
			return a.Product < b.Product
		}
		return a.SpeciesCode < b.SpeciesCode
	})
	return out
}
