package quake

// FilterByMagnitude returns the records whose numeric magnitude is at least
// min. Records with non-numeric magnitude text are dropped. Used only by the
// stats view; the scrape pipeline never filters on magnitude.
func FilterByMagnitude(records []Record, min float64) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		v, ok := r.MagnitudeValue()
		if !ok || v < min {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
