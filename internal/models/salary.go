package models

// SalaryPoint is a salary the user reported for a given year.
// Each point "resets" the effect of inflation from that year onwards.
type SalaryPoint struct {
	// Year is the year the salary was received.
	Year int `json:"year"`

	// Amount is the gross yearly salary. Must be strictly positive.
	Amount float64 `json:"amount"`
}

// AdjustedSalary is one year of the salary series.
// This is the output of the series builder in the calculator package.
type AdjustedSalary struct {
	// Year is the row's calendar year.
	Year int `json:"year"`

	// ReferenceYear is the year whose CPI the ratio is computed against.
	// By default this is the year of the most recent salary entry.
	ReferenceYear int `json:"reference_year"`

	// Salary is the most recent salary entered at or before Year.
	Salary float64 `json:"salary"`

	// ErodedSalary is what Salary is worth in ReferenceYear's money.
	// Calculated as: salary × CPI[reference] / CPI[year]
	ErodedSalary float64 `json:"eroded_salary"`

	// TargetSalary is the salary needed in Year to keep ReferenceYear's buying power.
	// Calculated as: salary × CPI[year] / CPI[reference]
	TargetSalary float64 `json:"target_salary"`
}
