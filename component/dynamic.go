package component

import "github.com/katalvlaran/dlmkit/feature"

// Dynamic is the base regression component: the caller supplies the
// time-varying design matrix and the component only tracks it alongside
// the metadata the estimator reads.
//
// Because the pattern is externally owned, Dynamic supports removal at any
// index (Popout); components that derive their features expose a
// pattern-preserving mutation surface instead (LongSeason).
type Dynamic struct {
	base
}

// NewDynamic builds a Dynamic component from a caller-supplied design
// matrix. Rows are deep-copied; the regression dimension is the row width
// and must be strictly smaller than the number of observations.
//
// An empty name defaults to "dynamic".
//
// Errors:
//   - feature.ErrNoRows / feature.ErrBadWidth / feature.ErrRaggedRows —
//     malformed design matrix
//   - ErrBadDiscount   — discount outside (0, 1]
//   - ErrConfiguration — row width >= number of rows
func NewDynamic(rows [][]float64, discount float64, name string) (*Dynamic, error) {
	fm, err := feature.FromRows(rows)
	if err != nil {
		return nil, err
	}
	b, err := newBase(fm, discount, name, DefaultDynamicName)
	if err != nil {
		return nil, err
	}

	d := &Dynamic{base: b}
	if err = d.validateDataLength(); err != nil {
		return nil, err
	}

	return d, nil
}

// ComponentType returns TypeDynamic.
func (d *Dynamic) ComponentType() Type { return TypeDynamic }

// AppendNewData extends the design with caller-supplied rows,
// all-or-nothing: a width mismatch anywhere in the batch leaves the
// component untouched.
//
// Errors:
//   - feature.ErrWidthMismatch — some row's width differs from Dimension()
func (d *Dynamic) AppendNewData(rows [][]float64) error {
	return d.features.AppendAll(rows)
}

// Popout removes the observation at index i. Legal at any index: the
// design is externally owned, so removal cannot corrupt a derived pattern.
//
// Errors:
//   - feature.ErrIndexOutOfRange — i outside [0, ObservationCount)
func (d *Dynamic) Popout(i int) error {
	return d.features.Remove(i)
}
