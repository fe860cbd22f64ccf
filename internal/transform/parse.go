package transform

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/timber-cli/internal/model"
)

// The parsers in this file encode fixed character-position contracts from
// the raw vendor and inventory extracts. The offsets are load-bearing:
// each parser is pinned by a unit test against a literal example from the
// source files, and changes must keep those examples passing.

// productAbbrs maps the 3-letter product prefix used by the Southern price
// vendor's column names.
var productAbbrs = map[string]model.Product{
	"saw": model.ProductSawtimber,
	"plp": model.ProductPulpwood,
	"pre": model.ProductPremerchantable,
}

// ParsePriceColumn splits a Southern price column name of the form
// <product 3><state 2><region digits>, e.g. "sawal1" = Sawtimber, AL,
// region 01. The region digits are zero-padded to 2.
func ParsePriceColumn(name string) (model.Product, string, string, error) {
	if len(name) < 6 {
		return "", "", "", eris.Errorf("price column %q too short to parse", name)
	}
	product, ok := productAbbrs[strings.ToLower(name[:3])]
	if !ok {
		return "", "", "", eris.Errorf("price column %q has unknown product prefix %q", name, name[:3])
	}
	state := strings.ToUpper(name[3:5])
	region := NormalizePriceRegion(name[5:])
	if _, err := strconv.Atoi(name[5:]); err != nil {
		return "", "", "", eris.Errorf("price column %q has non-numeric region %q", name, name[5:])
	}
	return product, state, region, nil
}

// SplitSizeClassColumn splits a biomass size-class column name into the
// 4-digit size class code and the human-readable inch range. The raw name
// follows the inventory export convention `CODE RANGE": a 2-character
// marker before the code and a trailing unit character after the range,
// e.g. "`'0008 9.0-10.9\"" parses to ("0008", "9.0-10.9").
func SplitSizeClassColumn(name string) (code, sizeRange string, err error) {
	token, rest, found := strings.Cut(name, " ")
	if !found {
		return "", "", eris.Errorf("size class column %q has no range separator", name)
	}
	if len(token) < 6 {
		return "", "", eris.Errorf("size class column %q has short code token %q", name, token)
	}
	code = token[2:]
	if len(code) != 4 {
		return "", "", eris.Errorf("size class column %q: code %q is not 4 digits", name, code)
	}
	if _, err := strconv.Atoi(code); err != nil {
		return "", "", eris.Errorf("size class column %q: code %q is not numeric", name, code)
	}
	if len(rest) < 2 {
		return "", "", eris.Errorf("size class column %q has empty range", name)
	}
	sizeRange = rest[:len(rest)-1]
	return code, sizeRange, nil
}

// EvalYear derives the 4-digit evaluation year from a 6-digit FIA
// evaluation ID: the middle two digits plus 2000. Only years 2000-2099 are
// representable; shorter IDs are zero-padded, longer or non-numeric IDs
// are rejected.
func EvalYear(evalid string) (int, error) {
	evalid = strings.TrimSpace(evalid)
	for len(evalid) < 6 {
		evalid = "0" + evalid
	}
	if len(evalid) != 6 {
		return 0, eris.Errorf("evaluation ID %q is not 6 digits", evalid)
	}
	yy, err := strconv.Atoi(evalid[2:4])
	if err != nil {
		return 0, eris.Errorf("evaluation ID %q has non-numeric year digits", evalid)
	}
	return 2000 + yy, nil
}

// ParseHarvestState extracts the 2-digit state FIPS code from the
// harvest-removals EVALUATION label, e.g.
// "`0055 552101 Wisconsin 2021" yields "55".
func ParseHarvestState(evaluation string) (string, error) {
	if len(evaluation) < 8 {
		return "", eris.Errorf("evaluation label %q too short for state code", evaluation)
	}
	return evaluation[6:8], nil
}

// ParseHarvestSpecies extracts the species code from the harvest-removals
// SPECIES label: the third space-separated token, which both the Southern
// and Great Lakes extracts carry after the SPCD marker. "`0012 SPCD 0012 -
// balsam fir" and "`0131 SPCD 131 - loblolly pine" yield 12 and 131.
func ParseHarvestSpecies(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) < 3 {
		return 0, eris.Errorf("species label %q too short for species code", label)
	}
	spcd, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, eris.Errorf("species label %q has non-numeric code %q", label, fields[2])
	}
	return spcd, nil
}

// sizeRangePad zero-pads single-digit inch bounds so range labels sort
// lexically in diameter order.
var sizeRangePad = map[string]string{
	"1.0-1.9":  "01.0-01.9",
	"2.0-2.9":  "02.0-02.9",
	"3.0-3.9":  "03.0-03.9",
	"4.0-4.9":  "04.0-04.9",
	"5.0-6.9":  "05.0-06.9",
	"7.0-8.9":  "07.0-08.9",
	"9.0-10.9": "09.0-10.9",
}

// NormalizeSizeRange returns a sort-stable form of a diameter range label.
// Labels without single-digit bounds pass through unchanged.
func NormalizeSizeRange(r string) string {
	if padded, ok := sizeRangePad[r]; ok {
		return padded
	}
	return r
}
