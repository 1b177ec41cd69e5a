package trend

import "errors"

var (
	// ErrUnsupportedGranularity is returned for anything other than year, month or day.
	ErrUnsupportedGranularity = errors.New("unsupported granularity")
	// ErrMismatchedFormat is returned when interval bounds differ in length.
	ErrMismatchedFormat = errors.New("mismatched period formats")
	// ErrUnrecognizedFormat is returned for period keys which aren't 4, 6 or 8 digits.
	ErrUnrecognizedFormat = errors.New("unrecognized period format")
)
