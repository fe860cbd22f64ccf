package price

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/timber-cli/internal/crosswalk"
	"github.com/sells-group/timber-cli/internal/ingest"
	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/reference"
	"github.com/sells-group/timber-cli/internal/transform"
)

// GreatLakesStats counts rows excluded or flagged while normalizing the
// Great Lakes vendor price sheet.
type GreatLakesStats struct {
	StateMeanRows    int            // 2-character region labels: state-level means, excluded
	NonStumpageRows  int            // delivered-price rows, out of scope
	SkippedCells     int            // missing or non-numeric prices
	UnknownStates    int            // region labels naming a state outside MI/MN/WI
	OtherProductRows int            // products other than Pulpwood/Sawtimber
	UnknownUnits     map[string]int // unit strings passed through unconverted
}

type glKey struct {
	stateFIPS   string
	stateAbbr   string
	priceRegion string
	bucket      string
	product     model.Product
}

// NormalizeGreatLakes reshapes the long-format Great Lakes vendor sheet
// into canonical rows. Rows are kept only when the region label is longer
// than two characters (two-character labels are state-level means that
// would double count) and the market is "Stumpage". Cord and mbf prices
// are converted to dollars per cubic foot; any other unit passes through
// unconverted and is flagged, since the pass-through is a simplification
// rather than a physical identity.
func NormalizeGreatLakes(t *ingest.Table) ([]model.PriceRow, *GreatLakesStats, error) {
	idx, err := t.RequireColumns("Region", "Market", "Species", "Product", "$ Per Unit", "Units")
	if err != nil {
		return nil, nil, err
	}
	regionIdx, marketIdx, speciesIdx, productIdx, priceIdx, unitsIdx :=
		idx[0], idx[1], idx[2], idx[3], idx[4], idx[5]

	stats := &GreatLakesStats{UnknownUnits: make(map[string]int)}
	log := zap.L().With(zap.String("source", t.Source))

	sums := make(map[glKey]float64)
	counts := make(map[glKey]int)

	for _, row := range t.Rows {
		label := t.Get(row, regionIdx)
		if len(label) <= 2 {
			stats.StateMeanRows++
			continue
		}
		if t.Get(row, marketIdx) != "Stumpage" {
			stats.NonStumpageRows++
			continue
		}

		stateAbbr, regionCode, found := strings.Cut(label, "-")
		if !found {
			stats.SkippedCells++
			continue
		}
		stateFIPS, ok := reference.StateFIPS(strings.ToUpper(stateAbbr))
		if !ok {
			stats.UnknownStates++
			log.Warn("price: region label names unknown state", zap.String("region", label))
			continue
		}

		var product model.Product
		switch t.Get(row, productIdx) {
		case "Pulpwood":
			product = model.ProductPulpwood
		case "Sawtimber":
			product = model.ProductSawtimber
		default:
			stats.OtherProductRows++
			continue
		}

		cell := t.Get(row, priceIdx)
		if cell == "" {
			stats.SkippedCells++
			continue
		}
		rawPrice, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			stats.SkippedCells++
			continue
		}

		var cuftPrice float64
		switch unit := strings.ToLower(t.Get(row, unitsIdx)); unit {
		case "cord":
			cuftPrice = transform.CordPriceToCuft(rawPrice)
		case "mbf":
			cuftPrice = transform.MBFPriceToCuft(rawPrice)
		default:
			// Treated as already cubic-foot-equivalent; flagged because a
			// new unit here means the conversion table needs extending.
			cuftPrice = rawPrice
			stats.UnknownUnits[unit]++
		}

		key := glKey{
			stateFIPS:   stateFIPS,
			stateAbbr:   strings.ToUpper(stateAbbr),
			priceRegion: transform.NormalizePriceRegion(regionCode),
			bucket:      crosswalk.CanonicalGLSpecies(t.Get(row, speciesIdx)),
			product:     product,
		}
		sums[key] += cuftPrice
		counts[key]++
	}

	rows := make([]model.PriceRow, 0, len(sums))
	for key, sum := range sums {
		rows = append(rows, model.PriceRow{
			StateFIPS:   key.stateFIPS,
			StateAbbr:   key.stateAbbr,
			PriceRegion: key.priceRegion,
			Bucket:      key.bucket,
			Product:     key.product,
			CuftPrice:   sum / float64(counts[key]),
		})
	}
	sortPriceRows(rows)

	for unit, n := range stats.UnknownUnits {
		log.Warn("price: unconverted unit passed through",
			zap.String("unit", unit), zap.Int("rows", n))
	}
	log.Info("price: normalized Great Lakes prices",
		zap.Int("rows", len(rows)),
		zap.Int("state_mean_rows_excluded", stats.StateMeanRows),
		zap.Int("non_stumpage_rows_excluded", stats.NonStumpageRows),
	)
	return rows, stats, nil
}
