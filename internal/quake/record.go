package quake

import (
	"strconv"
	"strings"
)

// Record is one earthquake observation from a PHIVOLCS monthly bulletin.
// The first six fields hold the table cells as-is; Month and Year are
// provenance tags set from the fetch parameters, never from page content.
// The csv tags reproduce the historical dataset header.
type Record struct {
	DateTime  string `csv:"Date-Time"`
	Latitude  string `csv:"Latitude"`
	Longitude string `csv:"Longitude"`
	Depth     string `csv:"Depth"`
	Magnitude string `csv:"Magnitude"`
	Location  string `csv:"Location"`
	Month     string `csv:"Month"`
	Year      int    `csv:"Year"`
}

// MagnitudeValue returns Magnitude as a float for ranking.
// The second result is false when the cell text is not numeric
// (header remnants, blank cells).
func (r Record) MagnitudeValue() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.Magnitude), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
