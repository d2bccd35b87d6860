package calculator

import "math"

// Inflation returns the price level ratio between two years: CPI[year2] / CPI[year1].
func Inflation(year1, year2 int, table *CPITable) (float64, error) {
	from, to, err := lookupPair(year1, year2, table)
	if err != nil {
		return 0, err
	}
	return to / from, nil
}

// AdjustSalary converts amount earned in fromYear into toYear's money.
// Based on the formula: adjusted = amount × CPI[toYear] / CPI[fromYear]
func AdjustSalary(amount float64, fromYear, toYear int, table *CPITable) (float64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}
	from, to, err := lookupPair(fromYear, toYear, table)
	if err != nil {
		return 0, err
	}
	if fromYear == toYear {
		return amount, nil
	}
	return amount * to / from, nil
}

// ErodedValue expresses refAmount, fixed in refYear, in comparisonYear's purchasing power.
// It is the inverse direction of AdjustSalary: eroded = amount × CPI[refYear] / CPI[comparisonYear]
func ErodedValue(refAmount float64, refYear, comparisonYear int, table *CPITable) (float64, error) {
	if err := validateAmount(refAmount); err != nil {
		return 0, err
	}
	ref, comparison, err := lookupPair(refYear, comparisonYear, table)
	if err != nil {
		return 0, err
	}
	if refYear == comparisonYear {
		return refAmount, nil
	}
	return refAmount * ref / comparison, nil
}

// RoundCents rounds half away from zero to two decimal places.
// All values shown to users go through here.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func lookupPair(year1, year2 int, table *CPITable) (float64, float64, error) {
	v1, err := table.Lookup(year1)
	if err != nil {
		return 0, 0, err
	}
	v2, err := table.Lookup(year2)
	if err != nil {
		return 0, 0, err
	}
	return v1, v2, nil
}

func validateAmount(amount float64) error {
	// NaN fails the comparison too
	if !(amount > 0) || math.IsInf(amount, 1) {
		return &InvalidAmountError{Amount: amount}
	}
	return nil
}
