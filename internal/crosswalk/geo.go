// Package crosswalk builds the reference mappings that tie the price and
// biomass worlds together: vendor price regions to FIA survey units, and
// inventory species classes to price-table species buckets.
package crosswalk

import (
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/timber-cli/internal/ingest"
	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/reference"
	"github.com/sells-group/timber-cli/internal/transform"
)

// countyRegion is an intermediate county-level assignment before the FIA
// survey unit is attached and county granularity is discarded.
type countyRegion struct {
	fips        string
	stateFIPS   string
	priceRegion string
}

// BuildPriceRegions unions the two vendor county tables, attaches FIA
// survey unit codes by county, filters to the region's states, and
// deduplicates to the (state, survey unit, price region) grain.
//
// The TMS table covers the South, the TMN table the Great Lakes; both are
// always unioned so a shared survey-unit file can serve either region.
func BuildPriceRegions(region model.Region, tms, tmn, fiaUnits *ingest.Table) (*model.PriceRegionMapping, error) {
	tmsRows, err := parseTMSCounties(tms)
	if err != nil {
		return nil, err
	}
	tmnRows, err := parseTMNCounties(tmn)
	if err != nil {
		return nil, err
	}

	units, err := surveyUnitsByCounty(fiaUnits)
	if err != nil {
		return nil, err
	}

	states := reference.RegionStateFIPS(region)
	seen := make(map[model.RegionAssignment]bool)
	var entries []model.RegionAssignment
	var unmatched int

	for _, cr := range append(tmsRows, tmnRows...) {
		if !states[cr.stateFIPS] {
			continue
		}
		unit, ok := units[cr.fips]
		if !ok {
			// Counties absent from the FIA unit file still get a mapping
			// under the undivided-state unit code.
			unit = "00"
			unmatched++
		}
		a := model.RegionAssignment{
			StateFIPS:   cr.stateFIPS,
			SurveyUnit:  unit,
			PriceRegion: cr.priceRegion,
		}
		if !seen[a] {
			seen[a] = true
			entries = append(entries, a)
		}
	}

	if unmatched > 0 {
		zap.L().Warn("crosswalk: counties missing FIA survey unit",
			zap.String("region", string(region)),
			zap.Int("counties", unmatched),
		)
	}
	if len(entries) == 0 {
		return nil, eris.Errorf("crosswalk: no price region assignments for region %s", region)
	}

	return model.NewPriceRegionMapping(entries), nil
}

// parseTMSCounties reads the Southern vendor table. The STTMS column holds
// a 5-digit composite whose last two digits are the price region; the
// county FIPS carries the state.
func parseTMSCounties(t *ingest.Table) ([]countyRegion, error) {
	idx, err := t.RequireColumns("FIPS Code", "STTMS")
	if err != nil {
		return nil, err
	}

	var out []countyRegion
	for _, row := range t.Rows {
		fips := transform.NormalizeCountyFIPS5(t.Get(row, idx[0]))
		sttms := t.Get(row, idx[1])
		if fips == "" || sttms == "" {
			continue
		}
		for len(sttms) < 5 {
			sttms = "0" + sttms
		}
		out = append(out, countyRegion{
			fips:        fips,
			stateFIPS:   fips[:2],
			priceRegion: sttms[len(sttms)-2:],
		})
	}
	return out, nil
}

// parseTMNCounties reads the Great Lakes vendor table, which keys by
// explicit state and county FIPS columns and encodes the price region as
// the trailing digit of a "MI-1"-style region label.
func parseTMNCounties(t *ingest.Table) ([]countyRegion, error) {
	idx, err := t.RequireColumns("County FIPS Code", "State FIPS Code", "Region")
	if err != nil {
		return nil, err
	}

	var out []countyRegion
	for _, row := range t.Rows {
		fips := transform.NormalizeCountyFIPS5(t.Get(row, idx[0]))
		state := transform.NormalizeFIPSState(t.Get(row, idx[1]))
		label := t.Get(row, idx[2])
		if fips == "" || state == "" || label == "" {
			continue
		}
		out = append(out, countyRegion{
			fips:        fips,
			stateFIPS:   state,
			priceRegion: transform.NormalizePriceRegion(label[len(label)-1:]),
		})
	}
	return out, nil
}

// surveyUnitsByCounty reads the FIA unit reference (county fips -> unitcd).
func surveyUnitsByCounty(t *ingest.Table) (map[string]string, error) {
	idx, err := t.RequireColumns("fips", "unitcd")
	if err != nil {
		return nil, err
	}

	units := make(map[string]string, len(t.Rows))
	for _, row := range t.Rows {
		fips := transform.NormalizeCountyFIPS5(t.Get(row, idx[0]))
		if fips == "" {
			continue
		}
		units[fips] = transform.NormalizeSurveyUnit(t.Get(row, idx[1]))
	}
	return units, nil
}

// SortAssignments orders assignments for stable output. Exposed for tests.
func SortAssignments(entries []model.RegionAssignment) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.StateFIPS != b.StateFIPS {
			return a.StateFIPS < b.StateFIPS
		}
		if a.SurveyUnit != b.SurveyUnit {
			return a.SurveyUnit < b.SurveyUnit
		}
		return a.PriceRegion < b.PriceRegion
	})
}
