package price

import (
	"math"
	"sort"

	"github.com/sells-group/timber-cli/internal/model"
)

// PremerchParams holds the discount assumptions behind the synthetic
// pre-merchantable prices.
type PremerchParams struct {
	DiscountRate    float64 // annual discount rate r
	MerchantableAge float64 // assumed age at merchantability, years
}

// DefaultPremerchParams are the standing assumptions for Southern pine:
// 5% discount rate, merchantable at 15 years.
func DefaultPremerchParams() PremerchParams {
	return PremerchParams{DiscountRate: 0.05, MerchantableAge: 15}
}

// premerchAges maps the four pre-merchantable diameter size classes to
// their midpoint stand ages in years. Derived externally from regional
// growth curves; configuration constants, not derivable quantities.
var premerchAges = []struct {
	sizeClass string
	age       float64
}{
	{"0001", 0.722},
	{"0002", 2.736},
	{"0003", 7.5},
	{"0004", 12.264},
}

// ExtrapolatePremerch synthesizes pre-merchantable prices from Pine
// pulpwood prices. No market price exists for immature stock, so each
// size class is priced as the present value of the eventual merchantable
// pulpwood: price(age) = P / (1+r)^(Am-age). Pine only; immature hardwood
// stands are not managed as a distinct market product.
func ExtrapolatePremerch(pulpwood []model.PriceRow, params PremerchParams) []model.PriceRow {
	base := make([]model.PriceRow, 0, len(pulpwood))
	for _, p := range pulpwood {
		if p.Bucket == "Pine" && p.Product == model.ProductPulpwood {
			base = append(base, p)
		}
	}
	sort.Slice(base, func(i, j int) bool {
		if base[i].StateFIPS != base[j].StateFIPS {
			return base[i].StateFIPS < base[j].StateFIPS
		}
		return base[i].PriceRegion < base[j].PriceRegion
	})

	rows := make([]model.PriceRow, 0, len(base)*len(premerchAges))
	for _, p := range base {
		for _, sc := range premerchAges {
			discount := math.Pow(1+params.DiscountRate, params.MerchantableAge-sc.age)
			rows = append(rows, model.PriceRow{
				StateFIPS:   p.StateFIPS,
				StateAbbr:   p.StateAbbr,
				PriceRegion: p.PriceRegion,
				Bucket:      "Pine",
				Product:     model.ProductPremerchantable,
				SizeClass:   sc.sizeClass,
				CuftPrice:   p.CuftPrice / discount,
			})
		}
	}
	return rows
}
