package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/realwage/internal/calculator"
	"github.com/mmynk/realwage/internal/models"
	"github.com/mmynk/realwage/internal/report"
	"github.com/mmynk/realwage/internal/storage/sqlite"
)

func newAdjustCmd(a *app) *cobra.Command {
	var amount float64
	var from, to int

	cmd := &cobra.Command{
		Use:     "adjust",
		Short:   "Convert a salary into another year's money (target salary).",
		Example: `  realwage adjust --amount 30000 --from 2015 --to 2020`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			adjusted, err := calculator.AdjustSalary(amount, from, to, a.table)
			if err != nil {
				return err
			}
			return report.WriteConversion(cmd.OutOrStdout(), report.Conversion{
				Label: "Target Salary", Amount: amount, FromYear: from, ToYear: to, Result: adjusted,
			})
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "salary amount")
	cmd.Flags().IntVar(&from, "from", 0, "year the amount was earned")
	cmd.Flags().IntVar(&to, "to", 0, "year to express the amount in")
	for _, name := range []string{"amount", "from", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newErodeCmd(a *app) *cobra.Command {
	var amount float64
	var ref, to int

	cmd := &cobra.Command{
		Use:     "erode",
		Short:   "Show what a fixed salary is worth in another year (eroded salary).",
		Example: `  realwage erode --amount 30000 --ref 2015 --to 2020`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eroded, err := calculator.ErodedValue(amount, ref, to, a.table)
			if err != nil {
				return err
			}
			return report.WriteConversion(cmd.OutOrStdout(), report.Conversion{
				Label: "Eroded Salary", Amount: amount, FromYear: ref, ToYear: to, Result: eroded,
			})
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "salary amount")
	cmd.Flags().IntVar(&ref, "ref", 0, "reference year the salary was fixed in")
	cmd.Flags().IntVar(&to, "to", 0, "comparison year")
	for _, name := range []string{"amount", "ref", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newSeriesCmd(a *app) *cobra.Command {
	var entries []string
	var reference int

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print salary, eroded salary and target salary for every year.",
		Example: `  realwage series --salary 2002=24000 --salary 2014=35000 --salary 2022=55000
  realwage series --salary 2002=24000 --reference 2002`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			salaries, err := parseSalaries(entries)
			if err != nil {
				return err
			}
			rows, err := calculator.AdjustedSalaries(salaries, a.table, calculator.SeriesOptions{
				ReferenceYear: reference,
				EndYear:       a.cfg.EndYear,
			})
			if err != nil {
				return err
			}
			return report.WriteSeries(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringArrayVar(&entries, "salary", nil, "salary entry as YEAR=AMOUNT (repeatable)")
	cmd.Flags().IntVar(&reference, "reference", 0, "use a single reference year")
	_ = cmd.MarkFlagRequired("salary")
	return cmd
}

func newCPICmd(a *app) *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "cpi",
		Short: "Print the loaded CPI dataset.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if exportPath != "" {
				if err := sqlite.Create(cmd.Context(), exportPath, a.table.Records()); err != nil {
					return fmt.Errorf("failed to export CPI data: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d CPI records to %s\n", a.table.Len(), exportPath)
				return nil
			}
			return report.WriteCPI(cmd.OutOrStdout(), a.table.Records())
		},
	}

	cmd.Flags().StringVar(&exportPath, "export-sqlite", "", "write the dataset to a new SQLite database instead of printing it")
	return cmd
}

// parseSalaries parses YEAR=AMOUNT entries.
func parseSalaries(entries []string) ([]models.SalaryPoint, error) {
	salaries := make([]models.SalaryPoint, 0, len(entries))
	for _, e := range entries {
		yearStr, amountStr, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("invalid salary %q: want YEAR=AMOUNT", e)
		}
		year, err := strconv.Atoi(strings.TrimSpace(yearStr))
		if err != nil {
			return nil, fmt.Errorf("invalid salary %q: bad year", e)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid salary %q: bad amount", e)
		}
		salaries = append(salaries, models.SalaryPoint{Year: year, Amount: amount})
	}
	return salaries, nil
}
