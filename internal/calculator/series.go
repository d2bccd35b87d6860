package calculator

import (
	"fmt"
	"sort"

	"github.com/mmynk/realwage/internal/models"
)

// SeriesOptions controls how AdjustedSalaries builds its rows.
type SeriesOptions struct {
	// ReferenceYear, when non-zero, is used as the single reference year for
	// every row instead of the year of the most recent salary entry.
	ReferenceYear int

	// EndYear is the last year in the series. Zero means the last CPI year.
	EndYear int
}

// AdjustedSalaries expands sparse salary observations into one row per year
// and computes the eroded and target salary of each row.
//
// Algorithm:
//   - Sort salaries by year; the first one opens the series
//   - Each year carries forward the most recent salary at or before it
//   - Each entry resets the reference year (unless opts.ReferenceYear is set)
//   - inflation = CPI[year] / CPI[reference]
//   - eroded = salary / inflation, target = salary × inflation
func AdjustedSalaries(salaries []models.SalaryPoint, table *CPITable, opts SeriesOptions) ([]models.AdjustedSalary, error) {
	if len(salaries) == 0 {
		return nil, fmt.Errorf("%w: at least one salary is required", ErrInvalidArgument)
	}

	sorted := make([]models.SalaryPoint, len(salaries))
	copy(sorted, salaries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	for i, s := range sorted {
		if err := validateAmount(s.Amount); err != nil {
			return nil, err
		}
		if i > 0 && sorted[i-1].Year == s.Year {
			return nil, fmt.Errorf("%w: duplicate salary for year %d", ErrInvalidArgument, s.Year)
		}
		if !table.Has(s.Year) {
			return nil, &MissingYearError{Year: s.Year}
		}
	}

	first := sorted[0].Year
	last := opts.EndYear
	if last == 0 {
		last = table.LastYear()
	} else if last < first {
		return nil, fmt.Errorf("%w: end year %d is before first salary year %d", ErrInvalidArgument, last, first)
	}
	// Salaries entered past the end year still get their own row
	if final := sorted[len(sorted)-1].Year; final > last {
		last = final
	}

	// Rows are allocated per year, so the range must stay inside the table
	if last > table.LastYear() {
		return nil, &MissingYearError{Year: table.LastYear() + 1}
	}

	if opts.ReferenceYear != 0 && !table.Has(opts.ReferenceYear) {
		return nil, &MissingYearError{Year: opts.ReferenceYear}
	}

	rows := make([]models.AdjustedSalary, 0, last-first+1)
	next := 0
	var current models.SalaryPoint
	for year := first; year <= last; year++ {
		for next < len(sorted) && sorted[next].Year <= year {
			current = sorted[next]
			next++
		}

		reference := current.Year
		if opts.ReferenceYear != 0 {
			reference = opts.ReferenceYear
		}

		target, err := AdjustSalary(current.Amount, reference, year, table)
		if err != nil {
			return nil, err
		}
		eroded, err := ErodedValue(current.Amount, reference, year, table)
		if err != nil {
			return nil, err
		}

		rows = append(rows, models.AdjustedSalary{
			Year:          year,
			ReferenceYear: reference,
			Salary:        current.Amount,
			ErodedSalary:  eroded,
			TargetSalary:  target,
		})
	}

	return rows, nil
}
