package formulas

import "math"

// PaybackNeverMonths is the sentinel returned when an investment never pays
// back (monthly net savings at or below zero).
const PaybackNeverMonths = 999

// ROIPercent calculates return on investment as a percentage.
// Returns 0 when total cost is 0 rather than dividing by zero.
func ROIPercent(totalSavings, totalCost float64) float64 {
	if totalCost == 0 {
		return 0
	}
	return (totalSavings - totalCost) / totalCost * 100
}

// PaybackMonths calculates how many months until cumulative net savings cover
// the implementation cost. Returns PaybackNeverMonths when monthly net savings
// are not positive.
func PaybackMonths(implementationCost, monthlyNetSavings float64) float64 {
	if monthlyNetSavings <= 0 {
		return PaybackNeverMonths
	}
	return implementationCost / monthlyNetSavings
}

// NPV discounts a constant annual cash flow over the given horizon and
// subtracts the initial outlay.
// NPV = sum_{y=1..years} cashFlow / (1+rate)^y - initialCost
func NPV(annualCashFlow float64, years int, rate, initialCost float64) float64 {
	npv := -initialCost
	for y := 1; y <= years; y++ {
		npv += annualCashFlow / math.Pow(1+rate, float64(y))
	}
	return npv
}
