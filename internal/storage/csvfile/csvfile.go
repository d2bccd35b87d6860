// Package csvfile provides a CSV-backed implementation of the storage.Source interface.
package csvfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mmynk/realwage/internal/models"
	"github.com/mmynk/realwage/internal/storage"
)

// Ensure Source implements storage.Source
var _ storage.Source = (*Source)(nil)

// Consumer Price Index by year from the ONS (series D7BT, annual average, 2015=100).
//
//go:embed data/cpi_by_year.csv
var defaultDataset []byte

// valueColumns are the accepted header names for the index column, in order of preference.
var valueColumns = []string{"index_value", "cpi", "value", "index"}

// Source reads CPI records from CSV data with a header row.
type Source struct {
	name string
	open func() (io.ReadCloser, error)
}

// New creates a Source reading the CSV file at path.
// The file is opened on Load, not here.
func New(path string) *Source {
	return &Source{
		name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// Embedded returns a Source over the CPI dataset compiled into the binary.
func Embedded() *Source {
	return &Source{
		name: "embedded:cpi_by_year.csv",
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(defaultDataset)), nil
		},
	}
}

// Name returns the file path or the embedded dataset name.
func (s *Source) Name() string {
	return s.name
}

// Load reads and parses all records.
func (s *Source) Load(ctx context.Context) ([]models.CPIRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open CPI dataset: %w", err)
	}
	defer rc.Close()

	records, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.name, err)
	}
	return records, nil
}

// Close is a no-op; files are closed after each Load.
func (s *Source) Close() error {
	return nil
}

// Parse reads CPI records from CSV.
// The header must contain a "year" column and an index column (see valueColumns);
// if no index column is named, the first non-year column is used.
// Other columns are ignored.
func Parse(r io.Reader) ([]models.CPIRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty CSV")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	yearCol, valueCol, err := locateColumns(headers)
	if err != nil {
		return nil, err
	}

	var records []models.CPIRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if yearCol >= len(row) || valueCol >= len(row) {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d", line, max(yearCol, valueCol)+1, len(row))
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[yearCol]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid year %q", line, row[yearCol])
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[valueCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid index value %q", line, row[valueCol])
		}

		records = append(records, models.CPIRecord{Year: year, IndexValue: value})
	}

	return records, nil
}

func locateColumns(headers []string) (yearCol, valueCol int, err error) {
	named := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if i == 0 {
			// Strip a UTF-8 BOM left by spreadsheet exports
			key = strings.TrimPrefix(key, "\ufeff")
		}
		if _, seen := named[key]; !seen {
			named[key] = i
		}
	}

	yearCol, ok := named["year"]
	if !ok {
		return -1, -1, fmt.Errorf("missing %q column in header %v", "year", headers)
	}

	for _, name := range valueColumns {
		if i, ok := named[name]; ok {
			return yearCol, i, nil
		}
	}
	for i := range headers {
		if i != yearCol {
			return yearCol, i, nil
		}
	}
	return -1, -1, fmt.Errorf("missing index column in header %v", headers)
}
