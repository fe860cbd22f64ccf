package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/timber-cli/internal/model"
)

func TestNormalizeFIPSState(t *testing.T) {
	assert.Equal(t, "01", NormalizeFIPSState("1"))
	assert.Equal(t, "01", NormalizeFIPSState("01"))
	assert.Equal(t, "48", NormalizeFIPSState("48"))
	assert.Equal(t, "", NormalizeFIPSState(""))
}

func TestNormalizeFIPSCounty(t *testing.T) {
	assert.Equal(t, "001", NormalizeFIPSCounty("1"))
	assert.Equal(t, "037", NormalizeFIPSCounty("37"))
	assert.Equal(t, "037", NormalizeFIPSCounty("037"))
	assert.Equal(t, "", NormalizeFIPSCounty(""))
}

func TestCombineFIPS(t *testing.T) {
	assert.Equal(t, "01001", CombineFIPS("1", "1"))
	assert.Equal(t, "48453", CombineFIPS("48", "453"))
	assert.Equal(t, "", CombineFIPS("", "037"))
	assert.Equal(t, "", CombineFIPS("01", ""))
}

func TestFormatFIPS(t *testing.T) {
	// Every state 0-99 yields 2 characters, every county 0-999 yields 3.
	for code := 0; code <= 99; code++ {
		assert.Len(t, FormatFIPS(code, 2), 2)
	}
	for code := 0; code <= 999; code += 7 {
		assert.Len(t, FormatFIPS(code, 3), 3)
	}
	assert.Equal(t, "01001", FormatFIPS(1001, 5))
}

func TestNormalizeSurveyUnit(t *testing.T) {
	assert.Equal(t, "02", NormalizeSurveyUnit("2"))
	assert.Equal(t, "11", NormalizeSurveyUnit("11"))
	assert.Equal(t, "00", NormalizeSurveyUnit(""))
}

func TestTonPriceRoundTrip(t *testing.T) {
	for _, price := range []float64{0, 0.01, 12.5, 30.75, 400} {
		assert.InDelta(t, price, TonPriceToCuft(price)*TonsToCubicFeet, 1e-9)
	}
}

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, 0.25, CordPriceToCuft(32), 1e-9)
	assert.InDelta(t, 20.0, MBFPriceToCuft(240), 1e-9)
	assert.InDelta(t, 2.5, ToBillions(2.5e9), 1e-9)
	assert.InDelta(t, 0.025713, ToMegatonnes(1e6), 1e-12)
}

func TestParsePriceColumn(t *testing.T) {
	tests := []struct {
		col     string
		product model.Product
		state   string
		region  string
	}{
		{"sawal1", model.ProductSawtimber, "AL", "01"},
		{"plpga2", model.ProductPulpwood, "GA", "02"},
		{"pretx1", model.ProductPremerchantable, "TX", "01"},
		{"sawfl12", model.ProductSawtimber, "FL", "12"},
	}
	for _, tt := range tests {
		product, state, region, err := ParsePriceColumn(tt.col)
		require.NoError(t, err, "column: %q", tt.col)
		assert.Equal(t, tt.product, product, "column: %q", tt.col)
		assert.Equal(t, tt.state, state, "column: %q", tt.col)
		assert.Equal(t, tt.region, region, "column: %q", tt.col)
	}
}

func TestParsePriceColumnRejects(t *testing.T) {
	for _, col := range []string{"", "saw", "sawal", "xyzal1", "sawalx"} {
		_, _, _, err := ParsePriceColumn(col)
		assert.Error(t, err, "column: %q", col)
	}
}

func TestSplitSizeClassColumn(t *testing.T) {
	code, sizeRange, err := SplitSizeClassColumn("`'0008 9.0-10.9\"")
	require.NoError(t, err)
	assert.Equal(t, "0008", code)
	assert.Equal(t, "9.0-10.9", sizeRange)

	code, sizeRange, err = SplitSizeClassColumn("`'0001 1.0-1.9\"")
	require.NoError(t, err)
	assert.Equal(t, "0001", code)
	assert.Equal(t, "1.0-1.9", sizeRange)
}

func TestSplitSizeClassColumnRejects(t *testing.T) {
	for _, col := range []string{"", "STATECD", "`'0008", "`'08 5.0-6.9\"", "`'00x8 5.0-6.9\""} {
		_, _, err := SplitSizeClassColumn(col)
		assert.Error(t, err, "column: %q", col)
	}
}

func TestEvalYear(t *testing.T) {
	year, err := EvalYear("132301")
	require.NoError(t, err)
	assert.Equal(t, 2023, year)

	// Short IDs are zero-padded before slicing.
	year, err = EvalYear("12101")
	require.NoError(t, err)
	assert.Equal(t, 2021, year)

	_, err = EvalYear("1234567")
	assert.Error(t, err)
	_, err = EvalYear("13xx01")
	assert.Error(t, err)
}

func TestParseHarvestLabels(t *testing.T) {
	state, err := ParseHarvestState("`0055 552101 Wisconsin 2021")
	require.NoError(t, err)
	assert.Equal(t, "55", state)

	spcd, err := ParseHarvestSpecies("`0131 SPCD 131 - loblolly pine")
	require.NoError(t, err)
	assert.Equal(t, 131, spcd)

	// The Great Lakes extract zero-pads its species codes.
	spcd, err = ParseHarvestSpecies("`0012 SPCD 0012 - balsam fir (Abies balsamea)")
	require.NoError(t, err)
	assert.Equal(t, 12, spcd)

	_, err = ParseHarvestState("short")
	assert.Error(t, err)
	_, err = ParseHarvestSpecies("`0131 SPCD")
	assert.Error(t, err)
}

func TestNormalizeSizeRange(t *testing.T) {
	assert.Equal(t, "01.0-01.9", NormalizeSizeRange("1.0-1.9"))
	assert.Equal(t, "09.0-10.9", NormalizeSizeRange("9.0-10.9"))
	assert.Equal(t, "11.0-12.9", NormalizeSizeRange("11.0-12.9"))
}
