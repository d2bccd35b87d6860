package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/realwage/internal/calculator"
	"github.com/mmynk/realwage/internal/config"
	"github.com/mmynk/realwage/internal/storage"
	"github.com/mmynk/realwage/internal/storage/csvfile"
	"github.com/mmynk/realwage/internal/storage/sqlite"
	"github.com/mmynk/realwage/pkg/logging"
)

// Set by the linker at release time.
var version = "dev"

// app carries state resolved in PersistentPreRunE to the subcommands.
type app struct {
	v     *viper.Viper
	cfg   *config.Config
	table *calculator.CPITable
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "realwage",
		Short:         "Compare a salary against inflation using CPI data.",
		Long:          `realwage computes what a salary is worth in real terms and what it should have been to keep up with the Consumer Price Index.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.String(config.KeyConfig, "", "config file (default is .realwage.yaml in . or $HOME)")
	flags.String(config.KeyCPISource, "", "CPI dataset: CSV or SQLite file (default is the embedded ONS dataset)")
	flags.String(config.KeyLogLevel, config.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.Int(config.KeyEndYear, 0, "last year of salary series (default is the last CPI year)")
	for _, key := range []string{config.KeyConfig, config.KeyCPISource, config.KeyLogLevel, config.KeyEndYear} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		newServeCmd(a),
		newAdjustCmd(a),
		newErodeCmd(a),
		newSeriesCmd(a),
		newCPICmd(a),
	)
	return root
}

// setup resolves config, configures logging and loads the CPI table once.
func (a *app) setup(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(logging.New(cmd.ErrOrStderr(), level))

	table, err := loadTable(ctx, cfg.CPISource)
	if err != nil {
		return err
	}
	a.table = table
	return nil
}

// openSource picks the dataset backend from the path.
func openSource(path string) (storage.Source, error) {
	switch storage.KindForPath(path) {
	case storage.KindEmbedded:
		return csvfile.Embedded(), nil
	case storage.KindSQLite:
		src, err := sqlite.New(path)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return csvfile.New(path), nil
	}
}

func loadTable(ctx context.Context, path string) (*calculator.CPITable, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	records, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load CPI data: %w", err)
	}
	table, err := calculator.NewCPITable(records)
	if err != nil {
		return nil, fmt.Errorf("failed to load CPI data from %s: %w", src.Name(), err)
	}

	slog.Info("CPI data loaded",
		"source", src.Name(),
		"years", table.Len(),
		"first_year", table.FirstYear(),
		"last_year", table.LastYear(),
	)
	return table, nil
}
