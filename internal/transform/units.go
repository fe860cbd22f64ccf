package transform

// Unit conversion constants. Timber trades in several traditional units;
// every price in the pipeline is normalized to dollars per cubic foot
// before any join.
const (
	// TonsToCubicFeet converts green short tons of timber to cubic feet.
	TonsToCubicFeet = 40.0

	// CubicFeetPerCord is the gross volume of one stacked cord.
	CubicFeetPerCord = 128.0

	// BoardFeetPerCubicFoot converts thousand-board-feet (mbf) sawtimber
	// prices: dividing an mbf price by 12 yields a cubic-foot price.
	BoardFeetPerCubicFoot = 12.0

	// CubicFtToMegatonne converts cubic feet of standing timber to
	// megatonnes for reporting.
	CubicFtToMegatonne = 0.025713 / 1e6

	// DollarsToBillions scales dollar values for reporting.
	DollarsToBillions = 1e-9
)

// TonPriceToCuft converts a dollars-per-ton price to dollars per cubic foot.
func TonPriceToCuft(price float64) float64 {
	return price / TonsToCubicFeet
}

// CordPriceToCuft converts a dollars-per-cord price to dollars per cubic foot.
func CordPriceToCuft(price float64) float64 {
	return price / CubicFeetPerCord
}

// MBFPriceToCuft converts a dollars-per-mbf price to dollars per cubic foot.
func MBFPriceToCuft(price float64) float64 {
	return price / BoardFeetPerCubicFoot
}

// ToBillions converts a dollar value to billions of dollars.
func ToBillions(dollars float64) float64 {
	return dollars * DollarsToBillions
}

// ToMegatonnes converts a cubic-foot volume to megatonnes.
func ToMegatonnes(cubicFeet float64) float64 {
	return cubicFeet * CubicFtToMegatonne
}
