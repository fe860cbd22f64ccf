package region

import (
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/timber-cli/internal/ingest"
	"github.com/sells-group/timber-cli/internal/model"
)

// ReadValuationCSV loads a processed region table back into memory, for
// reporting over a prior run without re-processing the source extracts.
func ReadValuationCSV(path string) ([]model.ValuationRow, error) {
	t, err := ingest.ReadCSV(path)
	if err != nil {
		return nil, err
	}
	idx, err := t.RequireColumns(valuationHeader...)
	if err != nil {
		return nil, err
	}

	rows := make([]model.ValuationRow, 0, len(t.Rows))
	for i, row := range t.Rows {
		spcd, err := strconv.Atoi(t.Get(row, idx[4]))
		if err != nil {
			return nil, eris.Wrapf(err, "region: %s row %d: bad species code", t.Source, i+1)
		}
		spgrp, err := strconv.Atoi(t.Get(row, idx[5]))
		if err != nil {
			return nil, eris.Wrapf(err, "region: %s row %d: bad species group", t.Source, i+1)
		}
		volume, err := strconv.ParseFloat(t.Get(row, idx[11]), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "region: %s row %d: bad volume", t.Source, i+1)
		}
		price, err := parseNullable(t.Get(row, idx[12]))
		if err != nil {
			return nil, eris.Wrapf(err, "region: %s row %d: bad price", t.Source, i+1)
		}
		value, err := parseNullable(t.Get(row, idx[13]))
		if err != nil {
			return nil, eris.Wrapf(err, "region: %s row %d: bad value", t.Source, i+1)
		}

		rows = append(rows, model.ValuationRow{
			StateFIPS:    t.Get(row, idx[0]),
			SurveyUnit:   t.Get(row, idx[1]),
			FIPS:         t.Get(row, idx[2]),
			PriceRegion:  t.Get(row, idx[3]),
			SpeciesCode:  spcd,
			SpeciesGroup: spgrp,
			SpeciesName:  t.Get(row, idx[6]),
			SpeciesClass: model.SpeciesClass(t.Get(row, idx[7])),
			Product:      model.Product(t.Get(row, idx[8])),
			SizeClass:    t.Get(row, idx[9]),
			SizeRange:    t.Get(row, idx[10]),
			Volume:       volume,
			CuftPrice:    price,
			Value:        value,
			PriceSource:  model.PriceSource(t.Get(row, idx[14])),
		})
	}
	return rows, nil
}

func parseNullable(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
