package utils

// Dutch corporate income tax, simplified two-bracket schedule.
const (
	lowerBracketCeiling = 200000.0
	lowerBracketRate    = 0.19
	upperBracketRate    = 0.258
)

// CalculateNetherlandsTax computes tax owed on taxable income: 19% up to
// 200,000 and 25.8% on the remainder. Non-positive income owes nothing.
func CalculateNetherlandsTax(taxableIncome float64) float64 {
	if taxableIncome <= 0 {
		return 0
	}
	if taxableIncome <= lowerBracketCeiling {
		return taxableIncome * lowerBracketRate
	}
	return lowerBracketCeiling*lowerBracketRate + (taxableIncome-lowerBracketCeiling)*upperBracketRate
}
