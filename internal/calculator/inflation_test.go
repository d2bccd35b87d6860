package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/realwage/internal/models"
)

func testTable(t *testing.T, records ...models.CPIRecord) *CPITable {
	t.Helper()
	table, err := NewCPITable(records)
	if err != nil {
		t.Fatalf("NewCPITable() error = %v", err)
	}
	return table
}

func scenarioTable(t *testing.T) *CPITable {
	return testTable(t,
		models.CPIRecord{Year: 2015, IndexValue: 100.0},
		models.CPIRecord{Year: 2020, IndexValue: 115.0},
	)
}

func TestAdjustSalary(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		fromYear int
		toYear   int
		want     float64
		wantErr  error
	}{
		{
			name:     "forward in time",
			amount:   30000,
			fromYear: 2015,
			toYear:   2020,
			want:     34500.0,
		},
		{
			name:     "backward in time",
			amount:   34500,
			fromYear: 2020,
			toYear:   2015,
			want:     30000.0,
		},
		{
			name:     "same year returns amount unchanged",
			amount:   12345.67,
			fromYear: 2020,
			toYear:   2020,
			want:     12345.67,
		},
		{
			name:     "unknown target year",
			amount:   30000,
			fromYear: 2015,
			toYear:   2099,
			wantErr:  ErrMissingYear,
		},
		{
			name:     "unknown source year",
			amount:   30000,
			fromYear: 1900,
			toYear:   2020,
			wantErr:  ErrMissingYear,
		},
		{
			name:     "negative amount",
			amount:   -100,
			fromYear: 2015,
			toYear:   2020,
			wantErr:  ErrInvalidAmount,
		},
		{
			name:     "zero amount",
			amount:   0,
			fromYear: 2015,
			toYear:   2020,
			wantErr:  ErrInvalidAmount,
		},
		{
			name:     "NaN amount",
			amount:   math.NaN(),
			fromYear: 2015,
			toYear:   2020,
			wantErr:  ErrInvalidAmount,
		},
	}

	table := scenarioTable(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdjustSalary(tt.amount, tt.fromYear, tt.toYear, table)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AdjustSalary() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AdjustSalary() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AdjustSalary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErodedValue(t *testing.T) {
	table := scenarioTable(t)

	got, err := ErodedValue(30000, 2015, 2020, table)
	if err != nil {
		t.Fatalf("ErodedValue() error = %v", err)
	}
	if math.Abs(got-26086.96) > 0.01 {
		t.Errorf("ErodedValue() = %v, want ~26086.96", got)
	}
	if RoundCents(got) != 26086.96 {
		t.Errorf("RoundCents(ErodedValue()) = %v, want 26086.96", RoundCents(got))
	}

	same, err := ErodedValue(500, 2015, 2015, table)
	if err != nil {
		t.Fatalf("ErodedValue() same year error = %v", err)
	}
	if same != 500 {
		t.Errorf("ErodedValue() same year = %v, want 500", same)
	}

	_, err = ErodedValue(30000, 2015, 2099, table)
	var missing *MissingYearError
	if !errors.As(err, &missing) {
		t.Fatalf("ErodedValue() error = %v, want *MissingYearError", err)
	}
	if missing.Year != 2099 {
		t.Errorf("MissingYearError.Year = %d, want 2099", missing.Year)
	}

	_, err = ErodedValue(-100, 2015, 2020, table)
	var invalid *InvalidAmountError
	if !errors.As(err, &invalid) {
		t.Fatalf("ErodedValue() error = %v, want *InvalidAmountError", err)
	}
	if invalid.Amount != -100 {
		t.Errorf("InvalidAmountError.Amount = %v, want -100", invalid.Amount)
	}
}

func TestAdjustAndErodeAreInverses(t *testing.T) {
	table := testTable(t,
		models.CPIRecord{Year: 1988, IndexValue: 48.4},
		models.CPIRecord{Year: 2002, IndexValue: 73.0},
		models.CPIRecord{Year: 2015, IndexValue: 100.0},
		models.CPIRecord{Year: 2022, IndexValue: 121.7},
	)
	years := []int{1988, 2002, 2015, 2022}
	amounts := []float64{1, 24000, 35000.5, 1e7}

	for _, y1 := range years {
		for _, y2 := range years {
			for _, a := range amounts {
				adjusted, err := AdjustSalary(a, y1, y2, table)
				if err != nil {
					t.Fatalf("AdjustSalary(%v, %d, %d) error = %v", a, y1, y2, err)
				}
				back, err := ErodedValue(adjusted, y1, y2, table)
				if err != nil {
					t.Fatalf("ErodedValue(%v, %d, %d) error = %v", adjusted, y1, y2, err)
				}
				if math.Abs(back-a) > 1e-9*a {
					t.Errorf("ErodedValue(AdjustSalary(%v, %d, %d)) = %v, want %v", a, y1, y2, back, a)
				}
			}
		}
	}
}

func TestInflation(t *testing.T) {
	table := scenarioTable(t)

	ratio, err := Inflation(2015, 2020, table)
	if err != nil {
		t.Fatalf("Inflation() error = %v", err)
	}
	if math.Abs(ratio-1.15) > 1e-12 {
		t.Errorf("Inflation() = %v, want 1.15", ratio)
	}

	if _, err := Inflation(2015, 2099, table); !errors.Is(err, ErrMissingYear) {
		t.Errorf("Inflation() error = %v, want ErrMissingYear", err)
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{26086.956521739130, 26086.96},
		{34500, 34500},
		{0.125, 0.13},
		{1.004, 1.0},
		{-1.006, -1.01},
	}
	for _, tt := range tests {
		if got := RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
