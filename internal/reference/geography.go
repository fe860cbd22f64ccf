package reference

import "github.com/sells-group/timber-cli/internal/model"

// SouthStates are the eleven Southern market states covered by the TMS
// price vendor.
var SouthStates = []string{"AL", "AR", "FL", "GA", "LA", "MS", "NC", "SC", "TN", "TX", "VA"}

// GreatLakesStates are the three Great Lakes market states covered by the
// TMN price vendor.
var GreatLakesStates = []string{"MI", "MN", "WI"}

// stateFIPS maps state postal abbreviations to 2-digit FIPS codes for the
// covered states.
var stateFIPS = map[string]string{
	"AL": "01", "AR": "05", "FL": "12", "GA": "13", "LA": "22",
	"MS": "28", "NC": "37", "SC": "45", "TN": "47", "TX": "48", "VA": "51",
	"MI": "26", "MN": "27", "WI": "55",
}

// StateFIPS returns the 2-digit FIPS code for a state abbreviation.
func StateFIPS(abbr string) (string, bool) {
	code, ok := stateFIPS[abbr]
	return code, ok
}

// StateAbbr returns the postal abbreviation for a 2-digit state FIPS code.
func StateAbbr(fips string) (string, bool) {
	for abbr, code := range stateFIPS {
		if code == fips {
			return abbr, true
		}
	}
	return "", false
}

// RegionStates returns the state abbreviations belonging to a region.
func RegionStates(region model.Region) []string {
	if region == model.RegionGreatLakes {
		return GreatLakesStates
	}
	return SouthStates
}

// RegionStateFIPS returns the set of state FIPS codes for a region.
func RegionStateFIPS(region model.Region) map[string]bool {
	set := make(map[string]bool)
	for _, abbr := range RegionStates(region) {
		set[stateFIPS[abbr]] = true
	}
	return set
}
