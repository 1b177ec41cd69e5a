package trend

import "fmt"

// Granularity is the resolution used to bucket day counts.
type Granularity string

const (
	Year  Granularity = "year"
	Month Granularity = "month"
	Day   Granularity = "day"
)

// DefaultGranularity is used when none is specified.
const DefaultGranularity = Month

// ParseGranularity converts a user-supplied string into a Granularity.
// An empty string gives DefaultGranularity.
func ParseGranularity(s string) (Granularity, error) {
	if s == "" {
		return DefaultGranularity, nil
	}
	g := Granularity(s)
	if g.KeyLen() == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedGranularity, s)
	}
	return g, nil
}

// KeyLen returns the length of period keys at this granularity,
// or 0 if the granularity is not supported.
func (g Granularity) KeyLen() int {
	switch g {
	case Year:
		return 4
	case Month:
		return 6
	case Day:
		return 8
	}
	return 0
}

func (g Granularity) String() string {
	return string(g)
}

// Aggregate sums day counts into year, month or day buckets.
func Aggregate(dayCounts DayCounts, g Granularity) (PeriodCounts, error) {
	n := g.KeyLen()
	if n == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGranularity, string(g))
	}

	result := PeriodCounts{}
	for date, cnt := range dayCounts {
		key := date
		if len(key) > n {
			key = key[:n]
		}
		result[key] += cnt
	}
	return result, nil
}
