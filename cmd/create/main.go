package main

import (
	"context"
	"os"

	"github.com/anrid/world-population/pkg/config"
	"github.com/anrid/world-population/pkg/stats"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

func main() {
	var (
		configFile string
		debug      bool
		flags      config.Config
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Prepare the world population report database",
		Long: `create loads a CSV (or XLS/XLSX) file of population estimates, derives
growth rates, population indices, decade means and country rankings, and saves
the result as a JSON database for the show command. The database is rebuilt
from the input on every run.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if debug {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.NewConsoleWriter()).Level(level).With().Timestamp().Logger()
			ctx := logger.WithContext(cmd.Context())

			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			override(cmd, cfg, &flags)

			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			return run(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Path to YAML config file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&flags.Input, "input", "", "Population estimates file")
	cmd.Flags().StringVar(&flags.URL, "url", "", "Download the input file from this URL first")
	cmd.Flags().StringVar(&flags.Database, "db", config.DefaultDatabase, "Report database to write")
	cmd.Flags().StringVar(&flags.Workbook, "xlsx", "", "Also export the tables to this XLSX workbook")
	cmd.Flags().StringVar(&flags.Charts, "charts", "", "Also draw PNG charts into this directory")
	cmd.Flags().StringVar(&flags.WorldLabel, "world", stats.DefaultWorldLabel, "Entity label of the world aggregate")
	cmd.Flags().IntVar(&flags.TopPeak, "top-peak", 5, "Number of countries ranked by peak population")
	cmd.Flags().IntVar(&flags.TopAverage, "top-average", 10, "Number of countries ranked by average population")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// override copies the flags the user set onto cfg.
func override(cmd *cobra.Command, cfg *config.Config, f *config.Config) {
	set := cmd.Flags().Changed
	if set("input") {
		cfg.Input = f.Input
	}
	if set("url") {
		cfg.URL = f.URL
	}
	if set("db") {
		cfg.Database = f.Database
	}
	if set("xlsx") {
		cfg.Workbook = f.Workbook
	}
	if set("charts") {
		cfg.Charts = f.Charts
	}
	if set("world") {
		cfg.WorldLabel = f.WorldLabel
	}
	if set("top-peak") {
		cfg.TopPeak = f.TopPeak
	}
	if set("top-average") {
		cfg.TopAverage = f.TopAverage
	}
}

// run rebuilds the report from the input on every call and overwrites the
// database.
func run(ctx context.Context, cfg *config.Config) error {
	logger := zerolog.Ctx(ctx)

	if cfg.URL != "" {
		if err := stats.Download(ctx, cfg.URL, cfg.Input); err != nil {
			logger.Error().Err(err).Msg("downloading input")
			return err
		}
	}

	r, err := stats.Prepare(ctx, cfg.Input, cfg.Options())
	if err != nil {
		logger.Error().Err(err).Str("input", cfg.Input).Msg("preparing report")
		return err
	}

	if err := r.Save(cfg.Database); err != nil {
		return err
	}
	logger.Info().Str("database", cfg.Database).Msg("saved report")

	if cfg.Workbook != "" {
		if err := r.SaveWorkbook(cfg.Workbook); err != nil {
			return err
		}
		logger.Info().Str("workbook", cfg.Workbook).Msg("exported workbook")
	}

	if cfg.Charts != "" {
		if err := os.MkdirAll(cfg.Charts, 0o755); err != nil {
			return errors.Errorf("creating chart directory: %w", err)
		}
		if err := r.SaveCharts(cfg.Charts); err != nil {
			return err
		}
		logger.Info().Str("dir", cfg.Charts).Msg("drew charts")
	}

	r.Info(os.Stdout)
	return nil
}
