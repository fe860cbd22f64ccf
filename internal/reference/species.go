// Package reference holds the static dictionaries used throughout the
// pipeline: FIA species codes, species groups, state FIPS codes, and the
// per-region marketable-species allow-lists. Everything here is loaded
// once and read-only for the run; components receive lookups through the
// exported accessors rather than mutating shared state.
package reference

// speciesNames maps FIA species codes to common names.
// Source: FIA REF_SPECIES, restricted to species appearing in the two
// covered regions.
var speciesNames = map[int]string{
	12:  "balsam fir",
	68:  "eastern redcedar",
	71:  "tamarack",
	91:  "Norway spruce",
	94:  "white spruce",
	95:  "black spruce",
	105: "jack pine",
	110: "shortleaf pine",
	111: "slash pine",
	121: "longleaf pine",
	125: "red pine",
	129: "eastern white pine",
	130: "Scotch pine",
	131: "loblolly pine",
	132: "Virginia pine",
	221: "baldcypress",
	313: "boxelder",
	316: "red maple",
	318: "sugar maple",
	371: "yellow birch",
	375: "paper birch",
	402: "bitternut hickory",
	403: "pignut hickory",
	404: "pecan",
	405: "shellbark hickory",
	407: "shagbark hickory",
	409: "mockernut hickory",
	462: "hackberry",
	531: "American beech",
	541: "white ash",
	543: "black ash",
	544: "green ash",
	546: "blue ash",
	601: "butternut",
	602: "black walnut",
	611: "sweetgum",
	621: "yellow-poplar",
	651: "cucumbertree",
	652: "southern magnolia",
	653: "sweetbay",
	742: "eastern cottonwood",
	743: "bigtooth aspen",
	746: "quaking aspen",
	762: "black cherry",
	802: "white oak",
	804: "swamp white oak",
	809: "northern pin oak",
	812: "southern red oak",
	822: "overcup oak",
	823: "bur oak",
	830: "pin oak",
	832: "chestnut oak",
	833: "northern red oak",
	837: "black oak",
	951: "American basswood",
	972: "American elm",
}

// speciesGroupNames maps FIA species group codes to group names.
var speciesGroupNames = map[int]string{
	1:  "Longleaf and slash pines",
	2:  "Loblolly and shortleaf pines",
	3:  "Other yellow pines",
	4:  "Eastern white and red pines",
	5:  "Jack pine",
	6:  "Spruce and balsam fir",
	7:  "Eastern hemlock",
	8:  "Cypress",
	9:  "Other eastern softwoods",
	23: "Woodland softwoods",
	25: "Select white oaks",
	26: "Select red oaks",
	27: "Other white oaks",
	28: "Other red oaks",
	29: "Hickory",
	30: "Yellow birch",
	31: "Hard maple",
	32: "Soft maple",
	33: "Beech",
	34: "Sweetgum",
	35: "Tupelo and blackgum",
	36: "Ash",
	37: "Cottonwood and aspen",
	38: "Basswood",
	39: "Yellow-poplar",
	40: "Black walnut",
	41: "Other eastern soft hardwoods",
	42: "Other eastern hard hardwoods",
	43: "Eastern noncommercial hardwoods",
}

// SpeciesName returns the common name for an FIA species code.
func SpeciesName(spcd int) (string, bool) {
	name, ok := speciesNames[spcd]
	return name, ok
}

// SpeciesGroupName returns the name of an FIA species group code.
func SpeciesGroupName(spgrpcd int) (string, bool) {
	name, ok := speciesGroupNames[spgrpcd]
	return name, ok
}
