// Package transform holds the small, heavily-tested formatting and parsing
// rules the normalizers share: FIPS zero-padding, unit conversions, and the
// fixed-offset parsers for composite identifiers in the raw extracts.
package transform

import (
	"fmt"
	"strings"
)

// NormalizeFIPSState normalizes a state FIPS code to 2 digits with
// zero-padding.
func NormalizeFIPSState(code string) string {
	return zeroPad(code, 2)
}

// NormalizeFIPSCounty normalizes a county FIPS code to 3 digits with
// zero-padding.
func NormalizeFIPSCounty(code string) string {
	return zeroPad(code, 3)
}

// NormalizeCountyFIPS5 normalizes a combined county FIPS code to 5 digits.
func NormalizeCountyFIPS5(code string) string {
	return zeroPad(code, 5)
}

// CombineFIPS combines state and county FIPS codes into a 5-digit code.
func CombineFIPS(state, county string) string {
	s := NormalizeFIPSState(state)
	c := NormalizeFIPSCounty(county)
	if s == "" || c == "" {
		return ""
	}
	return s + c
}

// NormalizeSurveyUnit normalizes an FIA survey unit code to 2 digits.
// Blank unit codes become "00", matching how the inventory extracts encode
// states that are not subdivided.
func NormalizeSurveyUnit(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "00"
	}
	return zeroPad(code, 2)
}

// NormalizePriceRegion normalizes a vendor price-region code to 2 digits.
func NormalizePriceRegion(code string) string {
	return zeroPad(code, 2)
}

// FormatFIPS formats a numeric FIPS code with proper zero-padding.
func FormatFIPS(code int, digits int) string {
	return fmt.Sprintf("%0*d", digits, code)
}

func zeroPad(code string, width int) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	for len(code) < width {
		code = "0" + code
	}
	return code
}
