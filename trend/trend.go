// Package trend counts keyword mentions in a corpus of dated entries and
// turns them into a dense, gap-filled series of per-period counts.
package trend

// Entry is a single dated piece of text in the corpus.
type Entry struct {
	Content string `json:"content" yaml:"content"`
	// PublishDate is in the form YYYYMMDD
	PublishDate string `json:"publish_date" yaml:"publish_date"`
}

// DayCounts maps YYYYMMDD day keys to the number of matching entries.
// Days without matches are not included at all.
type DayCounts map[string]int

// PeriodCounts maps period keys (YYYY, YYYYMM or YYYYMMDD) to counts.
type PeriodCounts map[string]int

// SeriesEntry is a single bar in the output chart.
type SeriesEntry struct {
	Period string `json:"period"`
	Value  int    `json:"value"`
}

// Series is a dense, ascending run of periods.
type Series []SeriesEntry

// Max returns the largest value in the series (0 for an empty series).
func (s Series) Max() int {
	max := 0
	for _, e := range s {
		if e.Value > max {
			max = e.Value
		}
	}
	return max
}

// Total returns the sum of all the values.
func (s Series) Total() int {
	tot := 0
	for _, e := range s {
		tot += e.Value
	}
	return tot
}
