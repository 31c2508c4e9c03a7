package component

import "github.com/katalvlaran/dlmkit/feature"

// base carries what every regression component shares: identity, the
// discount factor and the feature matrix. Concrete components embed it and
// add their own mutation surface, so operations like interior removal are
// only exposed where they are safe.
type base struct {
	name     string
	discount float64
	features *feature.Matrix
}

// newBase validates the shared fields. An empty name falls back to
// defaultName; the discount must lie in (0, 1].
func newBase(features *feature.Matrix, discount float64, name, defaultName string) (base, error) {
	if discount <= 0 || discount > 1 {
		return base{}, ErrBadDiscount
	}
	if name == "" {
		name = defaultName
	}

	return base{name: name, discount: discount, features: features}, nil
}

// validateDataLength enforces the construction-time length invariant: the
// regression dimension must be strictly smaller than the observation
// count, or the design cannot identify all regression states.
func (b *base) validateDataLength() error {
	if b.features.Width() >= b.features.Len() {
		return ErrConfiguration
	}

	return nil
}

// Name returns the component identifier.
func (b *base) Name() string { return b.name }

// Dimension returns the regression width (columns per feature row).
func (b *base) Dimension() int { return b.features.Width() }

// ObservationCount returns the number of tracked observations.
func (b *base) ObservationCount() int { return b.features.Len() }

// Features returns the component's feature matrix.
func (b *base) Features() *feature.Matrix { return b.features }

// Discount returns the forgetting factor, opaque to this package.
func (b *base) Discount() float64 { return b.discount }
