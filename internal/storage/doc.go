// Package storage persists earthquake catalogs as CSV datasets.
//
// Files are written UTF-8 with a byte-order mark so spreadsheet tools detect
// the encoding, one file per scraped year plus one combined file across all
// years, matching the historical dataset layout.
package storage
