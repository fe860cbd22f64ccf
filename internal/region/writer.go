package region

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/timber-cli/internal/model"
)

// valuationHeader is the column order of the processed region tables.
var valuationHeader = []string{
	"statecd", "unitcd", "fips", "priceRegion", "spcd", "spgrpcd",
	"species", "spclass", "product", "sizeClass", "sizeRange",
	"volume", "cuftPrice", "value", "priceSource",
}

// WriteValuationCSV writes a valuation table atomically: the rows go to a
// temp file in the target directory, which is renamed over the destination
// only after a successful flush. A crashed run never leaves a truncated
// table behind.
func WriteValuationCSV(path string, rows []model.ValuationRow) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrapf(err, "region: create output dir %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return eris.Wrap(err, "region: create temp output")
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(valuationHeader); err != nil {
		return eris.Wrap(err, "region: write header")
	}
	for _, r := range rows {
		record := []string{
			r.StateFIPS,
			r.SurveyUnit,
			r.FIPS,
			r.PriceRegion,
			strconv.Itoa(r.SpeciesCode),
			strconv.Itoa(r.SpeciesGroup),
			r.SpeciesName,
			string(r.SpeciesClass),
			string(r.Product),
			r.SizeClass,
			r.SizeRange,
			formatFloat(r.Volume),
			formatNullable(r.CuftPrice),
			formatNullable(r.Value),
			string(r.PriceSource),
		}
		if err := w.Write(record); err != nil {
			return eris.Wrap(err, "region: write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "region: flush output")
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrap(err, "region: close temp output")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return eris.Wrapf(err, "region: rename output to %s", path)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatNullable renders a missing price or value as an empty field, never
// as zero.
func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
