package cycle

import "errors"

var (
	// ErrBadPeriod indicates a machine was requested with Period < 1.
	ErrBadPeriod = errors.New("cycle: period must be at least 1")
	// ErrBadStay indicates a machine was requested with Stay < 1.
	ErrBadStay = errors.New("cycle: stay must be at least 1")
	// ErrStateOutOfRange indicates a state whose counters fall outside
	// [0, Period) × [0, Stay).
	ErrStateOutOfRange = errors.New("cycle: state counters out of range")
)
