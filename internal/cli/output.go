package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/quake"
)

func writeBanner(w io.Writer, startYear, endYear int) {
	fmt.Fprintln(w, "PHIVOLCS earthquake data scraper")
	fmt.Fprintf(w, "Scraping range: %d - %d\n", startYear, endYear)
}

// writeSummary renders the end-of-run report: records per year, the total,
// and the files written.
func writeSummary(w io.Writer, s *Summary) {
	fmt.Fprintln(w, "\nScraping complete")
	for year := s.StartYear; year <= s.EndYear; year++ {
		fmt.Fprintf(w, "  %d: %d earthquakes\n", year, s.ByYear[year])
	}
	fmt.Fprintf(w, "Total records: %d\n", s.Total)

	if len(s.Files) > 0 {
		fmt.Fprintln(w, "Files created:")
		for _, f := range s.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
}

// writeStats renders the dataset statistics view: magnitude summary, per-year
// counts, and the strongest earthquakes.
func writeStats(w io.Writer, records []quake.Record, top int) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records in dataset.")
		return
	}

	s := quake.SummarizeMagnitudes(records)
	fmt.Fprintln(w, "Magnitude statistics:")
	fmt.Fprintf(w, "  count: %d\n", s.Count)
	if s.Count > 0 {
		fmt.Fprintf(w, "  min:   %.1f\n", s.Min)
		fmt.Fprintf(w, "  max:   %.1f\n", s.Max)
		fmt.Fprintf(w, "  mean:  %.2f\n", s.Mean)
	}

	counts := quake.CountByYear(records)
	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	fmt.Fprintln(w, "\nEarthquakes by year:")
	for _, year := range years {
		fmt.Fprintf(w, "  %d: %d\n", year, counts[year])
	}

	strongest := quake.Strongest(records, top)
	if len(strongest) > 0 {
		fmt.Fprintf(w, "\nTop %d strongest earthquakes:\n", len(strongest))
		for _, r := range strongest {
			fmt.Fprintf(w, "  Mag %s - %s (%d)\n", r.Magnitude, truncate(r.Location, 50), r.Year)
		}
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
