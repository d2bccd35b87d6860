package calculator

import (
	"fmt"
	"math"
	"sort"

	"github.com/mmynk/realwage/internal/models"
)

// CPITable maps a year to its CPI index value.
// A table is never mutated after NewCPITable returns it, so it can be shared
// across goroutines.
type CPITable struct {
	index map[int]float64
	years []int // sorted ascending
}

// NewCPITable builds a lookup table from records.
// Years must be unique and every index value strictly positive.
func NewCPITable(records []models.CPIRecord) (*CPITable, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrInvalidTable)
	}

	t := &CPITable{
		index: make(map[int]float64, len(records)),
		years: make([]int, 0, len(records)),
	}
	for _, r := range records {
		if _, exists := t.index[r.Year]; exists {
			return nil, fmt.Errorf("%w: duplicate year %d", ErrInvalidTable, r.Year)
		}
		if !(r.IndexValue > 0) || math.IsInf(r.IndexValue, 0) {
			return nil, fmt.Errorf("%w: index for year %d must be positive, got %v", ErrInvalidTable, r.Year, r.IndexValue)
		}
		t.index[r.Year] = r.IndexValue
		t.years = append(t.years, r.Year)
	}
	sort.Ints(t.years)

	return t, nil
}

// Lookup returns the index value for year.
func (t *CPITable) Lookup(year int) (float64, error) {
	v, ok := t.index[year]
	if !ok {
		return 0, &MissingYearError{Year: year}
	}
	return v, nil
}

// Has reports whether year is present.
func (t *CPITable) Has(year int) bool {
	_, ok := t.index[year]
	return ok
}

// FirstYear returns the earliest year in the table.
func (t *CPITable) FirstYear() int { return t.years[0] }

// LastYear returns the latest year in the table.
func (t *CPITable) LastYear() int { return t.years[len(t.years)-1] }

// Len returns the number of years in the table.
func (t *CPITable) Len() int { return len(t.years) }

// Records returns the table contents ordered by year.
// The returned slice is a copy.
func (t *CPITable) Records() []models.CPIRecord {
	out := make([]models.CPIRecord, len(t.years))
	for i, y := range t.years {
		out[i] = models.CPIRecord{Year: y, IndexValue: t.index[y]}
	}
	return out
}
