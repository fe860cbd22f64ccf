package reference

import "github.com/sells-group/timber-cli/internal/model"

// southMarketableSpecies are the Southern species with a price-table
// counterpart. Derived from the FIA harvest-removals extract: species that
// are inventoried but never harvested commercially are excluded so they do
// not surface as permanently unvalued rows.
var southMarketableSpecies = []int{
	68, 110, 111, 121, 129, 131, 132, 221, 314, 318,
	402, 403, 404, 405, 407, 409, 541, 544, 546, 601,
	602, 611, 621, 651, 652, 653, 762, 802, 804, 812,
	822, 823, 830, 832, 837,
}

// southPremerchSpecies are the managed Southern pine species tracked at
// pre-merchantable sizes: shortleaf, slash, longleaf, loblolly.
var southPremerchSpecies = []int{110, 111, 121, 131}

// greatLakesMarketableSpecies is the Great Lakes allow-list, which spans
// both the regional conifers and the northern hardwood market.
var greatLakesMarketableSpecies = []int{
	12, 71, 86, 91, 94, 95, 105, 110, 111, 121,
	125, 126, 129, 130, 131, 132, 221, 313, 314, 316,
	318, 371, 375, 402, 403, 404, 405, 407, 409, 462,
	531, 541, 543, 544, 546, 601, 602, 611, 621, 651,
	652, 653, 742, 743, 746, 762, 802, 804, 809, 812,
	822, 823, 826, 830, 832, 833, 837, 951, 972, 977,
}

// MarketableSpecies returns the allow-list of marketable species codes for
// a region as a lookup set.
func MarketableSpecies(region model.Region) map[int]bool {
	var codes []int
	switch region {
	case model.RegionGreatLakes:
		codes = greatLakesMarketableSpecies
	default:
		codes = southMarketableSpecies
	}
	set := make(map[int]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}

// PremerchSpecies returns the pre-merchantable allow-list for a region.
// Only managed pine stands carry pre-merchantable value; the list is
// identical for both regions.
func PremerchSpecies(model.Region) map[int]bool {
	set := make(map[int]bool, len(southPremerchSpecies))
	for _, c := range southPremerchSpecies {
		set[c] = true
	}
	return set
}
