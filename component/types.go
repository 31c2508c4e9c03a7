package component

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/dlmkit/feature"
)

// Type tags a component for dispatch by the surrounding framework.
type Type string

const (
	// TypeDynamic marks a component whose features are supplied externally.
	TypeDynamic Type = "dynamic"
	// TypeLongSeason marks a component whose features are derived from a
	// running Period×Stay cycle.
	TypeLongSeason Type = "longSeason"
)

// Component is what the estimation framework reads from every regression
// component: identity, shape and the materialized feature matrix.
type Component interface {
	// Name returns the component's identifier within a model.
	Name() string
	// ComponentType returns the dispatch tag.
	ComponentType() Type
	// Dimension returns the regression width (columns per feature row).
	Dimension() int
	// ObservationCount returns the number of tracked observations, always
	// equal to the feature matrix length.
	ObservationCount() int
	// Features returns the component's feature matrix.
	Features() *feature.Matrix
	// Discount returns the smoothing/forgetting factor the estimator
	// applies to this component. Opaque here.
	Discount() float64
}

// Options configures a LongSeason component.
//
// Fields:
//   - Period   — number of distinct outer states in one full cycle.
//   - Stay     — consecutive observations each outer state is held.
//   - Discount — forgetting factor in (0, 1], passed through to the
//     estimator untouched.
//   - Name     — component identifier; empty means the type default.
//   - Logger   — diagnostics channel; nil means no diagnostics
//     (zap.NewNop). PopLast warns here on every invocation.
//
// Example:
//
//	opts := component.DefaultOptions()
//	opts.Period = 12        // month-of-year outer cycle
//	opts.Stay = 30
//	ls, err := component.NewLongSeason(365, &opts)
type Options struct {
	Period   int
	Stay     int
	Discount float64
	Name     string
	Logger   *zap.SugaredLogger
}

// Default LongSeason configuration: a week-of-month style cycle.
const (
	// DefaultPeriod is the default number of outer states.
	DefaultPeriod = 4
	// DefaultStay is the default run length per outer state.
	DefaultStay = 7
	// DefaultDiscount is the default forgetting factor.
	DefaultDiscount = 0.99
	// DefaultLongSeasonName is the default LongSeason component name.
	DefaultLongSeasonName = "longSeason"
	// DefaultDynamicName is the default Dynamic component name.
	DefaultDynamicName = "dynamic"
)

// DefaultOptions returns the documented defaults with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Period:   DefaultPeriod,
		Stay:     DefaultStay,
		Discount: DefaultDiscount,
		Name:     DefaultLongSeasonName,
		Logger:   zap.NewNop().Sugar(),
	}
}
