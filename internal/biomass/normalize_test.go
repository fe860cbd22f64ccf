package biomass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/timber-cli/internal/ingest"
	"github.com/sells-group/timber-cli/internal/model"
)

func inventoryTable(rows [][]string) *ingest.Table {
	header := []string{
		"EVALID", "STATECD", "COUNTYCD", "UNITCD", "SPCD", "SPGRPCD", "SPCLASS",
		"`'0002 2.0-2.9\"", "`'0008 9.0-10.9\"", "`'0013 15.0-16.9\"",
	}
	return ingest.NewTable("Merch_Bio.xlsx", header, rows)
}

func TestNormalizeMerchantable(t *testing.T) {
	tbl := inventoryTable([][]string{
		{"132301", "1", "15", "1", "131", "4", "Softwood", "10", "500", "120"},
		{"132301", "1", "15", "1", "999", "99", "Hardwood", "1", "2", "3"},
	})

	rows, stats, err := Normalize(tbl, model.RegionSouth, TierMerchantable)
	require.NoError(t, err)

	// One surviving species row fans out to one row per merchantable
	// size-class column; the 0002 column belongs to the other tier.
	require.Len(t, rows, 2)
	assert.Equal(t, 1, stats.DroppedSpecies)
	assert.Equal(t, 1, stats.DroppedPremerch)
	assert.Equal(t, 2, stats.InputRows)

	r := rows[0]
	assert.Equal(t, 2023, r.Year)
	assert.Equal(t, "01", r.StateFIPS)
	assert.Equal(t, "015", r.CountyFIPS)
	assert.Equal(t, "01015", r.FIPS)
	assert.Equal(t, "01", r.SurveyUnit)
	assert.Equal(t, 131, r.SpeciesCode)
	assert.Equal(t, "0008", r.SizeClass)
	assert.Equal(t, "09.0-10.9", r.SizeRange)
	assert.Equal(t, model.ProductPulpwood, r.Product)
	assert.InDelta(t, 500.0, r.Volume, 1e-9)

	assert.Equal(t, model.ProductSawtimber, rows[1].Product)
}

func TestNormalizeEmptyVolumeCellsZeroFill(t *testing.T) {
	tbl := inventoryTable([][]string{
		{"132301", "1", "15", "1", "131", "4", "Softwood", "", "500", ""},
	})

	rows, stats, err := Normalize(tbl, model.RegionSouth, TierMerchantable)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.InDelta(t, 500.0, rows[0].Volume, 1e-9)
	assert.Zero(t, rows[1].Volume)
	assert.Equal(t, 1, stats.ZeroFilledCells)
}

func TestNormalizePremerchTierFilters(t *testing.T) {
	tbl := inventoryTable([][]string{
		{"132301", "1", "15", "1", "131", "4", "Softwood", "10", "0", "0"},
		{"132301", "1", "15", "1", "110", "2", "Softwood", "5", "0", "0"},
		{"132301", "1", "15", "1", "802", "25", "Hardwood", "7", "0", "0"},
		{"132301", "1", "15", "1", "221", "9", "Softwood", "3", "0", "0"},
	})

	rows, stats, err := Normalize(tbl, model.RegionSouth, TierPremerchantable)
	require.NoError(t, err)

	// Only the four managed pine species survive, and only the 0002
	// column is a pre-merchantable class; hardwood rows and non-pine
	// softwood are dropped before the allow-list check.
	assert.Len(t, rows, 2)
	assert.Equal(t, 1, stats.DroppedHardwood)
	assert.Equal(t, 1, stats.DroppedSpecies)
	assert.Equal(t, 4, stats.DroppedMerch)
	for _, r := range rows {
		assert.Contains(t, []int{110, 131}, r.SpeciesCode)
		assert.Equal(t, model.ProductPremerchantable, r.Product)
	}
}

func TestNormalizeTiersSplitPremerchClasses(t *testing.T) {
	// The same sheet fed through both tiers must yield each size class
	// exactly once: 0001-0004 only from the pre-merchantable tier, the
	// rest only from the merchantable tier. Otherwise immature stands
	// would be valued twice.
	tbl := inventoryTable([][]string{
		{"132301", "1", "15", "1", "131", "4", "Softwood", "1000", "500", "120"},
	})

	merch, _, err := Normalize(tbl, model.RegionSouth, TierMerchantable)
	require.NoError(t, err)
	premerch, _, err := Normalize(tbl, model.RegionSouth, TierPremerchantable)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, r := range merch {
		assert.NotEqual(t, model.ProductPremerchantable, r.Product)
		seen[r.SizeClass]++
	}
	for _, r := range premerch {
		seen[r.SizeClass]++
	}
	assert.Equal(t, 1, seen["0002"])
	assert.Equal(t, 1, seen["0008"])
	assert.Equal(t, 1, seen["0013"])
}

func TestNormalizeGreatLakesCutoffs(t *testing.T) {
	tbl := inventoryTable([][]string{
		{"271901", "27", "53", "2", "71", "5", "Softwood", "1", "2", "3"},
	})

	rows, stats, err := Normalize(tbl, model.RegionGreatLakes, TierMerchantable)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2019, rows[0].Year)
	assert.Equal(t, 1, stats.DroppedPremerch)
	// Class 0013 is sawtimber in the South but still pulpwood here.
	assert.Equal(t, model.ProductPulpwood, rows[0].Product)
	assert.Equal(t, model.ProductPulpwood, rows[1].Product)
}

func TestNormalizeMalformedEvalid(t *testing.T) {
	tbl := inventoryTable([][]string{
		{"1234567", "1", "15", "1", "131", "4", "Softwood", "1", "2", "3"},
	})

	_, _, err := Normalize(tbl, model.RegionSouth, TierMerchantable)
	assert.Error(t, err)
}

func TestNormalizeMissingColumn(t *testing.T) {
	tbl := ingest.NewTable("Merch_Bio.xlsx", []string{"EVALID", "STATECD"}, nil)
	_, _, err := Normalize(tbl, model.RegionSouth, TierMerchantable)

	var missing *model.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "COUNTYCD", missing.Column)
}

func TestProductForSizeClass(t *testing.T) {
	cases := []struct {
		region model.Region
		code   string
		want   model.Product
	}{
		{model.RegionSouth, "0001", model.ProductPremerchantable},
		{model.RegionSouth, "0004", model.ProductPremerchantable},
		{model.RegionSouth, "0005", model.ProductPulpwood},
		{model.RegionSouth, "0011", model.ProductPulpwood},
		{model.RegionSouth, "0012", model.ProductSawtimber},
		{model.RegionSouth, "0040", model.ProductSawtimber},
		{model.RegionGreatLakes, "0005", model.ProductPulpwood},
		{model.RegionGreatLakes, "0019", model.ProductPulpwood},
		{model.RegionGreatLakes, "0020", model.ProductSawtimber},
		{model.RegionSouth, "0000", model.ProductUnknown},
		{model.RegionSouth, "0099", model.ProductUnknown},
		{model.RegionSouth, "xxxx", model.ProductUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ProductForSizeClass(tc.region, tc.code),
			"region %s code %s", tc.region, tc.code)
	}
}
