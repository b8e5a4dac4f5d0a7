package scraper

import (
	"regexp"
	"strings"
)

// The bulletin repeats its header between monthly sub-tables; these marker
// substrings identify those rows by the cell they appear in.
var (
	dateTimeMarkers  = []string{"date", "time", "philippine"}
	latitudeMarkers  = []string{"latitude", "ºn", "°n"}
	longitudeMarkers = []string{"longitude", "ºe", "°e"}
)

// Sub-table month labels like "Jan-24" that the source embeds as rows.
var monthAbbrevPattern = regexp.MustCompile(`^[A-Z][a-z]{2}-\d{2}$`)

// isHeaderRow reports whether a coerced row is a repeated in-page header,
// judged by marker substrings in the Date-Time, Latitude and Longitude cells.
func isHeaderRow(cells []string) bool {
	return containsAny(cells[0], dateTimeMarkers) ||
		containsAny(cells[1], latitudeMarkers) ||
		containsAny(cells[2], longitudeMarkers)
}

// isSummaryRow reports whether the first cell marks a summary/footer row
// ("Total ...", "No. of Events ...").
func isSummaryRow(first string) bool {
	s := strings.ToLower(strings.TrimSpace(first))
	return strings.Contains(s, "total") || strings.Contains(s, "no. of events")
}

// isMonthAbbrevRow reports whether the first cell is a month-abbreviation
// artifact such as "Jan-24".
func isMonthAbbrevRow(first string) bool {
	return monthAbbrevPattern.MatchString(strings.TrimSpace(first))
}

// isEmptyRow reports whether every cell is blank.
func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func containsAny(s string, markers []string) bool {
	s = strings.ToLower(s)
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
