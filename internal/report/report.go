// Package report renders calculation results as terminal tables.
package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/mmynk/realwage/internal/calculator"
	"github.com/mmynk/realwage/internal/models"
)

// FormatMoney renders an amount rounded to cents with two decimals.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(calculator.RoundCents(v), 'f', 2, 64)
}

// WriteSeries prints one row per year of the salary series.
func WriteSeries(w io.Writer, rows []models.AdjustedSalary) error {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.ReferenceYear),
			FormatMoney(r.Salary),
			FormatMoney(r.ErodedSalary),
			FormatMoney(r.TargetSalary),
		})
	}
	return render(w, []string{"Year", "Reference", calculator.SeriesSalary, calculator.SeriesEroded, calculator.SeriesTarget}, data)
}

// WriteCPI prints the CPI dataset.
func WriteCPI(w io.Writer, records []models.CPIRecord) error {
	data := make([][]string, 0, len(records))
	for _, r := range records {
		data = append(data, []string{
			strconv.Itoa(r.Year),
			strconv.FormatFloat(r.IndexValue, 'f', 1, 64),
		})
	}
	return render(w, []string{"Year", "CPI"}, data)
}

// Conversion is a single adjust or erode result.
type Conversion struct {
	Label    string
	Amount   float64
	FromYear int
	ToYear   int
	Result   float64
}

// WriteConversion prints a single calculation with its inputs.
func WriteConversion(w io.Writer, c Conversion) error {
	data := [][]string{{
		FormatMoney(c.Amount),
		strconv.Itoa(c.FromYear),
		strconv.Itoa(c.ToYear),
		FormatMoney(c.Result),
	}}
	return render(w, []string{"Amount", "From", "To", c.Label}, data)
}

func render(w io.Writer, headers []string, data [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
