package quake

import "sort"

// MagnitudeSummary holds basic statistics over the numeric magnitudes in a
// dataset. Count is the number of records with a parseable magnitude; records
// with non-numeric magnitude text are excluded from all four values.
type MagnitudeSummary struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// SummarizeMagnitudes computes min/max/mean over the records whose Magnitude
// parses as a number.
func SummarizeMagnitudes(records []Record) MagnitudeSummary {
	var s MagnitudeSummary
	var sum float64

	for _, r := range records {
		v, ok := r.MagnitudeValue()
		if !ok {
			continue
		}
		if s.Count == 0 || v < s.Min {
			s.Min = v
		}
		if s.Count == 0 || v > s.Max {
			s.Max = v
		}
		sum += v
		s.Count++
	}

	if s.Count > 0 {
		s.Mean = sum / float64(s.Count)
	}
	return s
}

// CountByYear tallies records per provenance year.
func CountByYear(records []Record) map[int]int {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Year]++
	}
	return counts
}

// Strongest returns the n records with the highest numeric magnitude, in
// descending order. Records whose magnitude does not parse are excluded.
// Ties keep their original dataset order.
func Strongest(records []Record, n int) []Record {
	ranked := make([]Record, 0, len(records))
	for _, r := range records {
		if _, ok := r.MagnitudeValue(); ok {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		mi, _ := ranked[i].MagnitudeValue()
		mj, _ := ranked[j].MagnitudeValue()
		return mi > mj
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
