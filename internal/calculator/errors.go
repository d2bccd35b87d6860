package calculator

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying calculator failures with errors.Is.
var (
	ErrMissingYear     = errors.New("missing year")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidTable    = errors.New("invalid cpi table")
	ErrInvalidArgument = errors.New("invalid argument")
)

// MissingYearError reports a year that has no entry in the CPI table.
type MissingYearError struct {
	Year int
}

func (e *MissingYearError) Error() string {
	return fmt.Sprintf("no CPI data for year %d", e.Year)
}

// Is makes errors.Is(err, ErrMissingYear) match.
func (e *MissingYearError) Is(target error) bool {
	return target == ErrMissingYear
}

// InvalidAmountError reports a salary amount that is not strictly positive.
type InvalidAmountError struct {
	Amount float64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("amount must be greater than zero, got %v", e.Amount)
}

// Is makes errors.Is(err, ErrInvalidAmount) match.
func (e *InvalidAmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}
