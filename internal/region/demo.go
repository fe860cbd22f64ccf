package region

import "github.com/sells-group/timber-cli/internal/ingest"

// Fixed demo dataset, substituted for the real extracts only when the
// caller explicitly opts in. Small enough to read by eye, shaped exactly
// like the vendor deliverables so the full pipeline exercises the same
// code paths.

func demoSouthPrices() *ingest.Table {
	return ingest.NewTable("demo:prices_south.csv",
		[]string{"year", "type", "region", "sawal1", "sawga1", "plpal1", "plpga1"},
		[][]string{
			{"2022", "pine", "south", "30.5", "32.5", "12.5", "13.5"},
			{"2023", "pine", "south", "31.5", "33.1", "12.9", "13.9"},
			{"2022", "oak", "south", "45.2", "47.2", "15.2", "16.2"},
			{"2023", "oak", "south", "44.8", "48.8", "14.8", "15.8"},
		})
}

func demoGLPrices() *ingest.Table {
	return ingest.NewTable("demo:TMN_Price_Series.xlsx",
		[]string{"Region", "Market", "Period End Date", "Species", "Product", "$ Per Unit", "Units"},
		[][]string{
			{"MI-1", "Stumpage", "2023-03-31", "Pine Unspecified", "Sawtimber", "240", "mbf"},
			{"MI-1", "Stumpage", "2023-06-30", "Pine Unspecified", "Pulpwood", "25.6", "cord"},
			{"MI-1", "Stumpage", "2023-06-30", "Mixed Hdwd", "Pulpwood", "12.8", "cord"},
			{"MI-1", "Stumpage", "2023-06-30", "Maple Unspecified", "Sawtimber", "480", "mbf"},
			{"MN-1", "Stumpage", "2023-03-31", "Spruce/Fir", "Pulpwood", "10.5", "cord"},
			{"MN-1", "Stumpage", "2023-03-31", "Pine Unspecified", "Sawtimber", "264", "mbf"},
			{"WI-1", "Stumpage", "2023-03-31", "Mixed Hdwd", "Pulpwood", "14.1", "cord"},
			{"WI-1", "Stumpage", "2023-03-31", "Pine Unspecified", "Sawtimber", "252", "mbf"},
		})
}

func demoBiomassHeader() []string {
	return []string{
		"EVALID", "STATECD", "COUNTYCD", "UNITCD", "SPCD", "SPGRPCD", "SPCLASS",
		"`'0002 2.0-2.9\"", "`'0008 9.0-10.9\"", "`'0013 15.0-16.9\"", "`'0021 21.0-28.9\"",
	}
}

func demoSouthMerchBiomass() *ingest.Table {
	return ingest.NewTable("demo:Merch_Bio.xlsx", demoBiomassHeader(),
		[][]string{
			{"132301", "1", "1", "1", "131", "4", "Softwood", "0", "1250", "840", "310"},
			{"132301", "1", "1", "1", "110", "2", "Softwood", "0", "430", "205", "88"},
			{"132301", "1", "3", "2", "802", "25", "Hardwood", "0", "620", "410", "150"},
			{"132301", "13", "1", "1", "131", "4", "Softwood", "0", "1510", "960", "402"},
			{"132301", "13", "5", "2", "833", "28", "Hardwood", "0", "540", "330", "96"},
		})
}

func demoSouthPremerchBiomass() *ingest.Table {
	return ingest.NewTable("demo:Premerch_Bio.xlsx",
		[]string{
			"EVALID", "STATECD", "COUNTYCD", "UNITCD", "SPCD", "SPGRPCD", "SPCLASS",
			"`'0001 0.0-0.9\"", "`'0002 1.0-1.9\"", "`'0003 3.0-3.9\"", "`'0004 5.0-6.9\"",
		},
		[][]string{
			{"132301", "1", "1", "1", "131", "4", "Softwood", "125", "225", "325", "425"},
			{"132301", "1", "1", "1", "110", "2", "Softwood", "140", "240", "340", "440"},
			{"132301", "13", "1", "1", "121", "1", "Softwood", "110", "210", "310", "410"},
		})
}

func demoGLMerchBiomass() *ingest.Table {
	return ingest.NewTable("demo:Merch_Bio.xlsx", demoBiomassHeader(),
		[][]string{
			{"262201", "26", "1", "1", "71", "5", "Softwood", "0", "525", "330", "120"},
			{"262201", "26", "1", "1", "316", "32", "Hardwood", "0", "480", "295", "101"},
			{"272201", "27", "1", "1", "12", "6", "Softwood", "0", "535", "340", "132"},
			{"552201", "55", "1", "1", "130", "4", "Softwood", "0", "510", "320", "115"},
		})
}

func demoTMSCounties() *ingest.Table {
	return ingest.NewTable("demo:tmsCounties.csv",
		[]string{"FIPS Code", "STTMS"},
		[][]string{
			{"1001", "101"},
			{"1003", "102"},
			{"13001", "1301"},
			{"13005", "1302"},
		})
}

func demoTMNCounties() *ingest.Table {
	return ingest.NewTable("demo:tmnCounties.csv",
		[]string{"County FIPS Code", "State FIPS Code", "Region"},
		[][]string{
			{"26001", "26", "MI-1"},
			{"27001", "27", "MN-1"},
			{"55001", "55", "WI-1"},
		})
}

func demoFIAUnits() *ingest.Table {
	return ingest.NewTable("demo:fiaUnits.csv",
		[]string{"fips", "unitcd"},
		[][]string{
			{"1001", "1"},
			{"1003", "2"},
			{"13001", "1"},
			{"13005", "2"},
			{"26001", "1"},
			{"27001", "1"},
			{"55001", "1"},
		})
}
