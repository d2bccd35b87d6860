package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/realwage/internal/calculator"
	"github.com/mmynk/realwage/internal/middleware"
)

// Code is the stable error identifier returned to API clients in the
// middleware.ErrorCodeHeader response header.
type Code string

const (
	CodeMissingYear     Code = "missing_year"
	CodeInvalidAmount   Code = "invalid_amount"
	CodeInvalidArgument Code = "invalid_argument"
	CodeInternal        Code = "internal"
)

// Classify maps an error to its API code and a message safe to show users.
// Input problems are never retried; they are reported back to be corrected.
func Classify(err error) (Code, string) {
	var missing *calculator.MissingYearError
	var invalid *calculator.InvalidAmountError
	switch {
	case errors.As(err, &missing):
		return CodeMissingYear, missing.Error()
	case errors.As(err, &invalid):
		return CodeInvalidAmount, invalid.Error()
	case errors.Is(err, calculator.ErrInvalidArgument):
		return CodeInvalidArgument, err.Error()
	default:
		return CodeInternal, "internal error"
	}
}

// connectError converts a calculation failure into a Connect error.
// Input errors become CodeInvalidArgument (HTTP 400) and keep err in their
// chain; anything else becomes CodeInternal with a redacted message.
func connectError(err error) *connect.Error {
	code, msg := Classify(err)

	var cerr *connect.Error
	if code == CodeInternal {
		slog.Error("Calculation failed", "error", err)
		cerr = connect.NewError(connect.CodeInternal, errors.New(msg))
	} else {
		cerr = connect.NewError(connect.CodeInvalidArgument, err)
	}
	cerr.Meta().Set(middleware.ErrorCodeHeader, string(code))
	return cerr
}
