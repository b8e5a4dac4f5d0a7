// Package cli implements the phivolcs-scraper commands: the root scrape run
// that walks the trailing years month by month, and the stats view over a
// previously written dataset.
package cli
