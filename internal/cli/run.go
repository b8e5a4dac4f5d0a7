package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/quake"
	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/scraper"
)

// Fetcher retrieves one month of earthquake records from the bulletin site.
type Fetcher interface {
	FetchMonth(ctx context.Context, year int, month string) ([]quake.Record, error)
}

// DatasetWriter persists per-year and combined datasets.
type DatasetWriter interface {
	WriteYear(year int, records []quake.Record) (string, error)
	WriteCombined(records []quake.Record) (string, error)
}

// Runner drives the sequential year/month scrape loop. Months are fetched
// one at a time with a courtesy throttle after every fetch; a failed month
// contributes zero records and never aborts the run.
type Runner struct {
	Fetcher Fetcher
	Store   DatasetWriter
	Clock   clockwork.Clock
	Delay   time.Duration
	Out     io.Writer
}

// Summary reports what a run produced.
type Summary struct {
	StartYear int
	EndYear   int
	ByYear    map[int]int
	Total     int
	Files     []string
}

// Run scrapes the yearsBack trailing years ending at currentYear, writes a
// per-year dataset for every year with records plus a combined dataset, and
// returns the run summary. currentYear is a parameter on purpose: the runner
// never reads the wall clock except to sleep.
func (r *Runner) Run(ctx context.Context, currentYear, yearsBack int) (*Summary, error) {
	startYear := currentYear - yearsBack + 1
	writeBanner(r.Out, startYear, currentYear)

	summary := &Summary{
		StartYear: startYear,
		EndYear:   currentYear,
		ByYear:    make(map[int]int),
	}
	var all []quake.Record

	for year := startYear; year <= currentYear; year++ {
		fmt.Fprintf(r.Out, "\nScraping year %d\n", year)
		records := r.scrapeYear(ctx, year)
		summary.ByYear[year] = len(records)
		summary.Total += len(records)

		if len(records) == 0 {
			fmt.Fprintf(r.Out, "  no data retrieved for %d\n", year)
			continue
		}

		path, err := r.Store.WriteYear(year, records)
		if err != nil {
			return nil, fmt.Errorf("writing year %d dataset: %w", year, err)
		}
		summary.Files = append(summary.Files, path)
		all = append(all, records...)
	}

	if len(all) > 0 {
		path, err := r.Store.WriteCombined(all)
		if err != nil {
			return nil, fmt.Errorf("writing combined dataset: %w", err)
		}
		summary.Files = append(summary.Files, path)
	}

	writeSummary(r.Out, summary)
	return summary, nil
}

// scrapeYear fetches all twelve months of one year. Failures are reported on
// the status line and logged, then the loop moves on.
func (r *Runner) scrapeYear(ctx context.Context, year int) []quake.Record {
	var records []quake.Record

	for _, month := range quake.MonthNames {
		fmt.Fprintf(r.Out, "  fetching %s %d... ", month, year)

		monthly, err := r.Fetcher.FetchMonth(ctx, year, month)
		switch {
		case err != nil:
			fmt.Fprintf(r.Out, "✗ %s\n", failureReason(err))
			slog.Debug("month fetch failed", "year", year, "month", month, "error", err)
		case len(monthly) == 0:
			fmt.Fprintln(r.Out, "✗ no data")
		default:
			fmt.Fprintf(r.Out, "✓ %d records\n", len(monthly))
			records = append(records, monthly...)
		}

		// Courtesy throttle, applied on success and failure alike.
		if r.Delay > 0 {
			r.Clock.Sleep(r.Delay)
		}
	}

	return records
}

// failureReason maps fetch/extract errors to the short status-line reason.
func failureReason(err error) string {
	switch {
	case errors.Is(err, scraper.ErrNoTable):
		return "no data"
	case errors.Is(err, scraper.ErrInvalidColumns):
		return "invalid columns"
	default:
		return err.Error()
	}
}
