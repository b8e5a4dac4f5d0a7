// Package scraper fetches PHIVOLCS monthly earthquake bulletin pages and
// extracts the embedded data table into quake records.
//
// The bulletin pages are uncontrolled, unversioned HTML: the earthquake table
// sits among layout tables, repeats its header rows between monthly
// sub-tables, and interleaves summary and month-abbreviation rows with real
// data. Extraction is heuristic cleaning. The first table wide enough to hold
// data is selected, coerced to the six-column schema, and stripped of
// non-data rows by independent per-row predicates.
package scraper
