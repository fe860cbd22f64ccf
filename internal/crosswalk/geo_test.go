package crosswalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/timber-cli/internal/ingest"
	"github.com/sells-group/timber-cli/internal/model"
)

func tmsTable(rows [][]string) *ingest.Table {
	return ingest.NewTable("tmsCounties.csv", []string{"FIPS Code", "STTMS"}, rows)
}

func tmnTable(rows [][]string) *ingest.Table {
	return ingest.NewTable("tmnCounties.csv", []string{"County FIPS Code", "State FIPS Code", "Region"}, rows)
}

func unitTable(rows [][]string) *ingest.Table {
	return ingest.NewTable("fiaUnits.csv", []string{"fips", "unitcd"}, rows)
}

func TestBuildPriceRegionsSouth(t *testing.T) {
	tms := tmsTable([][]string{
		{"01001", "00101"}, // AL county, region 01
		{"01003", "00101"}, // same (state, unit, region) after dedupe
		{"01005", "102"},   // short STTMS zero-pads to 00102 -> region 02
		{"13001", "1301"},  // GA region 01
	})
	tmn := tmnTable([][]string{
		{"26001", "26", "MI-1"}, // Great Lakes row, excluded for the South
	})
	units := unitTable([][]string{
		{"01001", "1"},
		{"01003", "1"},
		{"01005", "2"},
		{"13001", "1"},
	})

	mapping, err := BuildPriceRegions(model.RegionSouth, tms, tmn, units)
	require.NoError(t, err)

	assert.Equal(t, 3, mapping.Len())

	region, ok := mapping.Lookup("01", "01")
	require.True(t, ok)
	assert.Equal(t, "01", region)

	region, ok = mapping.Lookup("01", "02")
	require.True(t, ok)
	assert.Equal(t, "02", region)

	_, ok = mapping.Lookup("26", "01")
	assert.False(t, ok)
}

func TestBuildPriceRegionsGreatLakes(t *testing.T) {
	tms := tmsTable(nil)
	tmn := tmnTable([][]string{
		{"26001", "26", "MI-1"},
		{"27001", "27", "MN-2"},
		{"55001", "55", "WI-1"},
	})
	units := unitTable([][]string{
		{"26001", "1"},
		{"27001", "2"},
		// 55001 absent: falls back to undivided unit "00".
	})

	mapping, err := BuildPriceRegions(model.RegionGreatLakes, tms, tmn, units)
	require.NoError(t, err)
	assert.Equal(t, 3, mapping.Len())

	region, ok := mapping.Lookup("27", "02")
	require.True(t, ok)
	assert.Equal(t, "02", region)

	region, ok = mapping.Lookup("55", "00")
	require.True(t, ok)
	assert.Equal(t, "01", region)
}

func TestBuildPriceRegionsMissingColumn(t *testing.T) {
	bad := ingest.NewTable("tmsCounties.csv", []string{"FIPS Code", "WrongName"}, nil)
	_, err := BuildPriceRegions(model.RegionSouth, bad, tmnTable(nil), unitTable(nil))

	var missing *model.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "STTMS", missing.Column)
}

func TestBuildPriceRegionsDeterministicOrder(t *testing.T) {
	tms := tmsTable([][]string{
		{"48001", "4802"},
		{"01001", "00101"},
	})
	units := unitTable([][]string{{"48001", "1"}, {"01001", "1"}})

	mapping, err := BuildPriceRegions(model.RegionSouth, tms, tmnTable(nil), units)
	require.NoError(t, err)

	entries := mapping.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "01", entries[0].StateFIPS)
	assert.Equal(t, "48", entries[1].StateFIPS)
}
