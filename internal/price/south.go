// Package price normalizes the regional stumpage price extracts into
// canonical long-format rows (dollars per cubic foot at the state /
// price region / species bucket / product grain) and synthesizes
// pre-merchantable prices from pulpwood prices.
package price

import (
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/sells-group/timber-cli/internal/ingest"
	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/reference"
	"github.com/sells-group/timber-cli/internal/transform"
)

// SouthStats counts content-coverage gaps encountered while normalizing
// the Southern price table. None of these abort the run.
type SouthStats struct {
	SkippedColumns   int // value columns whose name failed the fixed-offset parse
	SkippedCells     int // empty or non-numeric price cells
	UnknownStates    int // columns naming a state outside the covered set
	PremerchColumns  int // raw pre-merchantable columns, excluded from output
	UnknownClassRows int // rows with a species-class label other than pine/oak
}

// southMetaColumns are the leading metadata columns of the wide Southern
// price CSV; everything else is a value column.
var southMetaColumns = map[string]bool{"year": true, "type": true, "region": true}

// southClassLabels maps the source species-class labels to bucket names.
var southClassLabels = map[string]string{"pine": "Pine", "oak": "Oak"}

type southKey struct {
	stateFIPS   string
	stateAbbr   string
	priceRegion string
	bucket      string
	product     model.Product
}

// NormalizeSouth reshapes the wide Southern price table into canonical
// rows. Each value column name encodes (product, state, price region) at
// fixed offsets; prices arrive in dollars per ton and leave in dollars per
// cubic foot, averaged over the source's temporal granularity.
//
// Raw pre-merchantable columns are excluded: those prices are sparse and
// unreliable, and the extrapolator synthesizes them from pulpwood instead.
func NormalizeSouth(t *ingest.Table) ([]model.PriceRow, *SouthStats, error) {
	classIdx, err := t.RequireColumns("type")
	if err != nil {
		return nil, nil, err
	}

	stats := &SouthStats{}
	log := zap.L().With(zap.String("source", t.Source))

	// Resolve value columns once from the header.
	type valueColumn struct {
		idx         int
		product     model.Product
		stateAbbr   string
		stateFIPS   string
		priceRegion string
	}
	var valueCols []valueColumn
	for i, name := range t.Header {
		if southMetaColumns[normalizeLabel(name)] {
			continue
		}
		product, stateAbbr, region, err := transform.ParsePriceColumn(name)
		if err != nil {
			stats.SkippedColumns++
			log.Warn("price: unparseable column name", zap.String("column", name))
			continue
		}
		if product == model.ProductPremerchantable {
			stats.PremerchColumns++
			continue
		}
		stateFIPS, ok := reference.StateFIPS(stateAbbr)
		if !ok {
			stats.UnknownStates++
			log.Warn("price: column names unknown state", zap.String("column", name))
			continue
		}
		valueCols = append(valueCols, valueColumn{i, product, stateAbbr, stateFIPS, region})
	}

	sums := make(map[southKey]float64)
	counts := make(map[southKey]int)

	for _, row := range t.Rows {
		bucket, ok := southClassLabels[normalizeLabel(t.Get(row, classIdx[0]))]
		if !ok {
			stats.UnknownClassRows++
			continue
		}
		for _, vc := range valueCols {
			cell := t.Get(row, vc.idx)
			if cell == "" {
				stats.SkippedCells++
				continue
			}
			tonPrice, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				stats.SkippedCells++
				continue
			}
			key := southKey{vc.stateFIPS, vc.stateAbbr, vc.priceRegion, bucket, vc.product}
			sums[key] += tonPrice
			counts[key]++
		}
	}

	rows := make([]model.PriceRow, 0, len(sums))
	for key, sum := range sums {
		rows = append(rows, model.PriceRow{
			StateFIPS:   key.stateFIPS,
			StateAbbr:   key.stateAbbr,
			PriceRegion: key.priceRegion,
			Bucket:      key.bucket,
			Product:     key.product,
			CuftPrice:   transform.TonPriceToCuft(sum / float64(counts[key])),
		})
	}
	sortPriceRows(rows)

	log.Info("price: normalized Southern prices",
		zap.Int("rows", len(rows)),
		zap.Int("skipped_columns", stats.SkippedColumns),
		zap.Int("skipped_cells", stats.SkippedCells),
	)
	return rows, stats, nil
}

func normalizeLabel(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != ' ' {
			b = append(b, c)
		}
	}
	return string(b)
}

func sortPriceRows(rows []model.PriceRow) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.StateFIPS != b.StateFIPS {
			return a.StateFIPS < b.StateFIPS
		}
		if a.PriceRegion != b.PriceRegion {
			return a.PriceRegion < b.PriceRegion
		}
		if a.Bucket != b.Bucket {
			return a.Bucket < b.Bucket
		}
		if a.Product != b.Product {
			return a.Product < b.Product
		}
		return a.SizeClass < b.SizeClass
	})
}
