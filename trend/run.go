package trend

// Query describes a single keyword search.
type Query struct {
	Word        string
	Granularity Granularity
}

// Run performs a search with the default Calendar.
func Run(q Query, entries []Entry) (Series, error) {
	return Calendar{}.Run(q, entries)
}

// Run counts q.Word across entries, aggregates at q.Granularity
// (DefaultGranularity if empty) and returns the dense series.
func (cal Calendar) Run(q Query, entries []Entry) (Series, error) {
	g := q.Granularity
	if g == "" {
		g = DefaultGranularity
	}
	periodCounts, err := Aggregate(CountWordByDay(q.Word, entries), g)
	if err != nil {
		return nil, err
	}
	return cal.Densify(periodCounts)
}
