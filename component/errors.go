package component

import "errors"

var (
	// ErrConfiguration indicates the regression dimension is not strictly
	// smaller than the number of observations: a season cannot be modeled
	// with fewer observations than its own cardinality.
	ErrConfiguration = errors.New("component: regression dimension must be smaller than the observation count")

	// ErrEmptyMatrix indicates a pop on a component with zero tracked
	// observations.
	ErrEmptyMatrix = errors.New("component: feature matrix is empty")

	// ErrBadDiscount indicates a discount factor outside (0, 1].
	ErrBadDiscount = errors.New("component: discount must lie in (0, 1]")
)
