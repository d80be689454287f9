package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/anrid/world-population/pkg/config"
	"github.com/anrid/world-population/pkg/stats"
	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	var (
		database string
		dump     bool
	)

	cmd := &cobra.Command{
		Use:          "show",
		Short:        "Print the tables of a prepared world population report",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

			r, found, err := stats.LoadIfExists(database)
			if err != nil {
				logger.Error().Err(err).Msg("loading report")
				return err
			}
			if !found {
				return errors.Errorf("no database found at %s, run the create command in `cmd/create` first", database)
			}

			if dump {
				spew.Dump(r)
				return nil
			}

			r.Info(os.Stdout)
			return show(r)
		},
	}

	cmd.Flags().StringVar(&database, "db", config.DefaultDatabase, "Report database to read")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the raw report instead of tables")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func show(r *stats.Report) error {
	// New locale number printer.
	p := message.NewPrinter(language.English)

	num := func(v stats.Value, format string) string {
		if !v.Valid {
			return "-"
		}
		if !v.Defined() {
			return v.String()
		}
		return p.Sprintf(format, v.Float)
	}

	pterm.DefaultSection.Println(r.WorldLabel + " Population")
	world := pterm.TableData{{"Year", "Population", "Growth Rate", "Index"}}
	for _, o := range r.WorldSeries {
		world = append(world, []string{
			strconv.Itoa(o.Year),
			p.Sprintf("%.f", o.Population),
			num(o.GrowthRate, "%.2f%%"),
			num(o.PopIndex, "%.1f"),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(world).Render(); err != nil {
		return errors.Errorf("rendering world table: %w", err)
	}

	pterm.DefaultSection.Println("Population by Decade (Mean)")
	decades := pterm.TableData{{"Decade", "Rows", "Population", "Growth Rate"}}
	for _, d := range r.Decades {
		decades = append(decades, []string{
			fmt.Sprintf("%ds", d.Decade),
			strconv.Itoa(d.Rows),
			num(d.Population, "%.f"),
			num(d.GrowthRate, "%.2f%%"),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(decades).Render(); err != nil {
		return errors.Errorf("rendering decade table: %w", err)
	}

	pterm.DefaultSection.Printf("Top %d Countries by Peak Population\n", len(r.TopPeak))
	peak := pterm.TableData{{"#", "Country", "Peak"}}
	for i, c := range r.TopPeak {
		peak = append(peak, []string{
			fmt.Sprintf("%02d", i+1),
			c.Country,
			p.Sprintf("%.f", c.Peak),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(peak).Render(); err != nil {
		return errors.Errorf("rendering peak table: %w", err)
	}

	pterm.DefaultSection.Printf("Top %d Countries by Average Population\n", len(r.TopAverage))
	avg := pterm.TableData{{"#", "Country", "Years", "Population", "Growth Rate"}}
	for i, s := range r.TopAverage {
		avg = append(avg, []string{
			fmt.Sprintf("%02d", i+1),
			s.Country,
			strconv.Itoa(s.Years),
			num(s.Population, "%.f"),
			num(s.GrowthRate, "%.2f%%"),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(avg).Render(); err != nil {
		return errors.Errorf("rendering average table: %w", err)
	}
	return nil
}
