// Package model defines the core domain types for the timber valuation
// pipeline: normalized price and biomass rows, the price-region mapping,
// and the valuation table produced by the join engine.
package model

import (
	"fmt"
	"sort"
)

// Region identifies one of the two covered market regions.
type Region string

const (
	RegionSouth      Region = "south"
	RegionGreatLakes Region = "greatlakes"
)

// ParseRegion parses a user-supplied region name. Accepts the short alias
// "gl" for the Great Lakes.
func ParseRegion(s string) (Region, error) {
	switch s {
	case "south":
		return RegionSouth, nil
	case "greatlakes", "gl":
		return RegionGreatLakes, nil
	default:
		return "", fmt.Errorf("unknown region %q (want south, greatlakes)", s)
	}
}

// SpeciesClass is the broad inventory classification of a species.
type SpeciesClass string

const (
	Softwood SpeciesClass = "Softwood"
	Hardwood SpeciesClass = "Hardwood"
)

// Product is the market product tier derived from tree diameter.
type Product string

const (
	ProductPremerchantable Product = "Pre-merchantable"
	ProductPulpwood        Product = "Pulpwood"
	ProductSawtimber       Product = "Sawtimber"
	ProductUnknown         Product = "Unknown"
)

// PriceSource records how a valuation row obtained its price.
type PriceSource string

const (
	PriceMatched  PriceSource = "matched"
	PriceFallback PriceSource = "fallback"
	PriceMissing  PriceSource = "unpriced"
)

// PriceRow is one normalized stumpage price at the
// (state, price region, species bucket, product) grain, always expressed
// in dollars per cubic foot regardless of the source unit.
//
// For pre-merchantable rows SizeClass carries the 4-digit diameter size
// class code that acts as the join key; it is empty otherwise.
type PriceRow struct {
	StateFIPS   string
	StateAbbr   string
	PriceRegion string
	Bucket      string
	Product     Product
	SizeClass   string
	CuftPrice   float64
}

// BiomassRow is one normalized forest-inventory cell: geography x species x
// diameter size class, with volume in cubic feet.
type BiomassRow struct {
	Year         int
	StateFIPS    string
	CountyFIPS   string
	FIPS         string
	SurveyUnit   string
	SpeciesCode  int
	SpeciesGroup int
	SpeciesClass SpeciesClass
	SizeClass    string
	SizeRange    string
	Product      Product
	Volume       float64
}

// ValuationRow is one row of the final region valuation table.
// CuftPrice and Value are nil when no price could be attached, even via
// the fallback average; a nil value is reported, never coerced to zero.
type ValuationRow struct {
	StateFIPS    string
	SurveyUnit   string
	FIPS         string
	PriceRegion  string
	SpeciesCode  int
	SpeciesGroup int
	SpeciesName  string
	SpeciesClass SpeciesClass
	Product      Product
	SizeClass    string
	SizeRange    string
	Volume       float64
	CuftPrice    *float64
	Value        *float64
	PriceSource  PriceSource
}

// RegionAssignment maps one (state, survey unit) pair to a price region.
type RegionAssignment struct {
	StateFIPS   string
	SurveyUnit  string
	PriceRegion string
}

// PriceRegionMapping resolves FIA survey units to vendor price regions.
// County granularity is discarded once the (state, unit, region) key is
// known; when multiple price regions claim the same survey unit the
// lexicographically smallest region wins so lookups stay deterministic.
type PriceRegionMapping struct {
	entries []RegionAssignment
	byUnit  map[string]string
}

// NewPriceRegionMapping builds a mapping from deduplicated assignments.
func NewPriceRegionMapping(entries []RegionAssignment) *PriceRegionMapping {
	sorted := make([]RegionAssignment, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.StateFIPS != b.StateFIPS {
			return a.StateFIPS < b.StateFIPS
		}
		if a.SurveyUnit != b.SurveyUnit {
			return a.SurveyUnit < b.SurveyUnit
		}
		return a.PriceRegion < b.PriceRegion
	})

	byUnit := make(map[string]string, len(sorted))
	for _, e := range sorted {
		key := e.StateFIPS + "|" + e.SurveyUnit
		if _, ok := byUnit[key]; !ok {
			byUnit[key] = e.PriceRegion
		}
	}
	return &PriceRegionMapping{entries: sorted, byUnit: byUnit}
}

// Lookup returns the price region for a (state, survey unit) pair.
func (m *PriceRegionMapping) Lookup(stateFIPS, surveyUnit string) (string, bool) {
	r, ok := m.byUnit[stateFIPS+"|"+surveyUnit]
	return r, ok
}

// Entries returns the deduplicated assignments in deterministic order.
func (m *PriceRegionMapping) Entries() []RegionAssignment {
	return m.entries
}

// Len returns the number of distinct (state, unit, region) assignments.
func (m *PriceRegionMapping) Len() int { return len(m.entries) }
