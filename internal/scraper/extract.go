package scraper

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/zekejulia/phivolcs-earthquake-data-scraper/internal/quake"
)

const (
	// minColumns is the selection threshold: the earthquake table is the
	// first one at least this wide, everything narrower is page layout.
	minColumns = 5
	// schemaColumns is the canonical bulletin column count:
	// Date-Time, Latitude, Longitude, Depth, Magnitude, Location.
	schemaColumns = 6
)

var (
	// ErrNoTable reports that no table on the page was wide enough to be the
	// earthquake table. Callers treat it as "no data", not a failure.
	ErrNoTable = errors.New("no earthquake table found")

	// ErrInvalidColumns reports a selected table narrower than the six-column
	// schema.
	ErrInvalidColumns = errors.New("invalid column count")
)

// ExtractRecords parses one bulletin page and returns its earthquake records
// tagged with the given provenance year and month. It is a pure function of
// its inputs: the same HTML yields the same records in document order.
//
// A zero-record result with a nil error means every row was filtered out;
// ErrNoTable and ErrInvalidColumns carry the reason when no table qualifies.
// Callers handle all three identically (no data for that month).
func ExtractRecords(r io.Reader, year int, month string) ([]quake.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	rows, width, ok := selectDataTable(doc)
	if !ok {
		return nil, ErrNoTable
	}
	if width < schemaColumns {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColumns, width)
	}

	records := make([]quake.Record, 0, len(rows))
	for _, row := range rows {
		cells := coerceRow(row)
		if isHeaderRow(cells) || isSummaryRow(cells[0]) || isMonthAbbrevRow(cells[0]) || isEmptyRow(cells) {
			continue
		}
		records = append(records, quake.Record{
			DateTime:  cells[0],
			Latitude:  cells[1],
			Longitude: cells[2],
			Depth:     cells[3],
			Magnitude: cells[4],
			Location:  cells[5],
			Month:     month,
			Year:      year,
		})
	}

	return records, nil
}

// selectDataTable scans the page's tables in document order and returns the
// rows and width of the first one whose width (after the mandatory first-row
// discard) reaches minColumns. ok is false when no table qualifies.
func selectDataTable(doc *goquery.Document) (rows [][]string, width int, ok bool) {
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		candidate := tableRows(table)
		if len(candidate) == 0 {
			return true
		}
		w := rowWidth(candidate)
		if w < minColumns {
			return true
		}
		rows, width, ok = candidate, w, true
		return false
	})
	return rows, width, ok
}

// tableRows flattens a <table> into cell text rows. The first row is always
// discarded: the source convention places a caption/title row there.
func tableRows(table *goquery.Selection) [][]string {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cleanCellText(cell.Text()))
		})
		rows = append(rows, cells)
	})

	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

// rowWidth is the widest row in the table. The source emits ragged rows, so
// the table's column count is the maximum, with short rows padded later.
func rowWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// coerceRow fits a row to the six-column schema: extra trailing cells are
// formatting artifacts and get truncated, missing cells become empty strings.
func coerceRow(row []string) []string {
	cells := make([]string, schemaColumns)
	copy(cells, row)
	return cells
}

// cleanCellText collapses all whitespace runs (including non-breaking spaces
// from the source markup) to single spaces and trims the ends.
func cleanCellText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
