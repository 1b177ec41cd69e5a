package trend

// Densify turns period counts into a gap-free series running from the
// earliest to the latest period, using the default Calendar.
func Densify(periodCounts PeriodCounts) (Series, error) {
	return Calendar{}.Densify(periodCounts)
}

// Densify turns period counts into a gap-free series running from the
// earliest to the latest period. Periods with no count get 0.
// Keys are compared as strings, so they must all be the same width.
func (cal Calendar) Densify(periodCounts PeriodCounts) (Series, error) {
	out := Series{}
	if len(periodCounts) == 0 {
		return out, nil
	}

	var minDate, maxDate string
	first := true
	for period := range periodCounts {
		if first {
			minDate, maxDate = period, period
			first = false
			continue
		}
		if period < minDate {
			minDate = period
		}
		if period > maxDate {
			maxDate = period
		}
	}

	periods, err := cal.Interval(minDate, maxDate)
	if err != nil {
		return nil, err
	}
	for _, period := range periods {
		out = append(out, SeriesEntry{Period: period, Value: periodCounts[period]})
	}
	return out, nil
}
