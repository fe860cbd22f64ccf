package region

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/timber-cli/internal/ingest"
	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/reference"
	"github.com/sells-group/timber-cli/internal/transform"
)

// HarvestedSpecies is the set of species codes with recorded commercial
// harvest volume, keyed by 2-digit state FIPS.
type HarvestedSpecies map[string]map[int]bool

// ParseHarvestedSpecies derives the per-state harvested species set from
// the harvest-removals extract. Rows with a zero or empty ESTIMATE are
// skipped; the state and species codes sit at fixed offsets inside the
// GRP2 and GRP1 composite labels.
func ParseHarvestedSpecies(t *ingest.Table) (HarvestedSpecies, error) {
	idx, err := t.RequireColumns("ESTIMATE", "GRP1", "GRP2")
	if err != nil {
		return nil, err
	}
	estIdx, grp1Idx, grp2Idx := idx[0], idx[1], idx[2]

	out := make(HarvestedSpecies)
	for _, row := range t.Rows {
		est := t.Get(row, estIdx)
		if est == "" || est == "0" {
			continue
		}
		state, err := transform.ParseHarvestState(t.Get(row, grp2Idx))
		if err != nil {
			return nil, err
		}
		spcd, err := transform.ParseHarvestSpecies(t.Get(row, grp1Idx))
		if err != nil {
			return nil, err
		}
		if out[state] == nil {
			out[state] = make(map[int]bool)
		}
		out[state][spcd] = true
	}
	return out, nil
}

// LogAllowListCoverage compares the region's marketable allow-list against
// the harvested species actually observed and warns about allow-listed
// species no state harvests. Advisory only; the valuation does not change.
func LogAllowListCoverage(region model.Region, harvested HarvestedSpecies) {
	anyState := make(map[int]bool)
	for _, species := range harvested {
		for spcd := range species {
			anyState[spcd] = true
		}
	}

	var unharvested []int
	for spcd := range reference.MarketableSpecies(region) {
		if !anyState[spcd] {
			unharvested = append(unharvested, spcd)
		}
	}
	sort.Ints(unharvested)

	log := zap.L().With(zap.String("region", string(region)))
	if len(unharvested) > 0 {
		log.Warn("harvest: allow-listed species with no recorded harvest",
			zap.Ints("species", unharvested))
	}
	log.Info("harvest: allow-list coverage",
		zap.Int("states", len(harvested)),
		zap.Int("harvested_species", len(anyState)))
}
