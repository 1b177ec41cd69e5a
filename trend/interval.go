package trend

import (
	"fmt"
	"strconv"
)

// Calendar generates runs of period keys.
//
// The zero Calendar uses a simplified month table where February always has
// 28 days, so 29th February never appears in day-level intervals. Charts
// produced by earlier versions relied on that, so it stays the default.
type Calendar struct {
	// LeapYears gives February 29 days in Gregorian leap years.
	LeapYears bool
}

// DaysInMonth returns the number of days assumed for a month (1-12).
// FIXME: never returns 29 (leap years). Use Calendar{LeapYears: true} to
// get proper Februaries.
func DaysInMonth(month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	}
	return 28
}

// DaysIn returns the number of days the calendar gives to year/month.
func (cal Calendar) DaysIn(year, month int) int {
	if month == 2 && cal.LeapYears && isLeap(year) {
		return 29
	}
	return DaysInMonth(month)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Interval returns every period key from start to end, inclusive, using
// the default Calendar.
func Interval(start, end string) ([]string, error) {
	return Calendar{}.Interval(start, end)
}

// Interval returns every period key from start to end, inclusive.
// start and end must be the same length: 4 (YYYY), 6 (YYYYMM) or
// 8 (YYYYMMDD). If start is after end, the result is empty.
func (cal Calendar) Interval(start, end string) ([]string, error) {
	if len(start) != len(end) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrMismatchedFormat, start, end)
	}

	sy, sm, sd, err := splitPeriod(start)
	if err != nil {
		return nil, err
	}
	ey, em, ed, err := splitPeriod(end)
	if err != nil {
		return nil, err
	}

	out := []string{}
	switch len(start) {
	case 4:
		for y := sy; y <= ey; y++ {
			out = append(out, strconv.Itoa(y))
		}
	case 6:
		for y := sy; y <= ey; y++ {
			for m := 1; m <= 12; m++ {
				if y == sy && m < sm {
					continue
				}
				if y == ey && m > em {
					continue
				}
				out = append(out, strconv.Itoa(y)+pad(m))
			}
		}
	case 8:
		for y := sy; y <= ey; y++ {
			for m := 1; m <= 12; m++ {
				if y == sy && m < sm {
					continue
				}
				if y == ey && m > em {
					continue
				}
				for d := 1; d <= cal.DaysIn(y, m); d++ {
					if y == sy && m == sm && d < sd {
						continue
					}
					if y == ey && m == em && d > ed {
						continue
					}
					out = append(out, strconv.Itoa(y)+pad(m)+pad(d))
				}
			}
		}
	}
	return out, nil
}

// splitPeriod breaks a period key into year, month and day.
// Missing parts are returned as 0.
func splitPeriod(key string) (year, month, day int, err error) {
	switch len(key) {
	case 4, 6, 8:
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, key)
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, key)
		}
	}

	year, _ = strconv.Atoi(key[0:4])
	if len(key) >= 6 {
		month, _ = strconv.Atoi(key[4:6])
	}
	if len(key) == 8 {
		day, _ = strconv.Atoi(key[6:8])
	}
	return year, month, day, nil
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
