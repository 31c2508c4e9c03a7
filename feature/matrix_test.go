// SPDX-License-Identifier: MIT

package feature_test

import (
	"testing"

	"github.com/katalvlaran/dlmkit/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers width validation on construction.
func TestNew_Validation(t *testing.T) {
	_, err := feature.New(0)
	assert.ErrorIs(t, err, feature.ErrBadWidth, "width=0 must error ErrBadWidth")

	fm, err := feature.New(4)
	require.NoError(t, err)
	assert.Equal(t, 0, fm.Len(), "new matrix starts empty")
	assert.Equal(t, 4, fm.Width())
}

// TestFromRows_Validation covers empty, ragged and zero-width inputs.
func TestFromRows_Validation(t *testing.T) {
	_, err := feature.FromRows(nil)
	assert.ErrorIs(t, err, feature.ErrNoRows, "nil rows must error ErrNoRows")

	_, err = feature.FromRows([][]float64{{}})
	assert.ErrorIs(t, err, feature.ErrBadWidth, "zero-width first row must error ErrBadWidth")

	_, err = feature.FromRows([][]float64{{1, 0}, {1}})
	assert.ErrorIs(t, err, feature.ErrRaggedRows, "differing lengths must error ErrRaggedRows")

	fm, err := feature.FromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, fm.Len())
	assert.Equal(t, 2, fm.Width())
}

// TestFromRows_CopiesInput guards against aliasing the caller's slices.
func TestFromRows_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 0}, {0, 1}}
	fm, err := feature.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 42
	row, err := fm.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, row, "matrix must own copies of ingested rows")
}

// TestAppend_WidthCheck verifies Append rejects mismatched rows without
// mutating.
func TestAppend_WidthCheck(t *testing.T) {
	fm, err := feature.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, fm.Append([]float64{1, 0}), feature.ErrWidthMismatch)
	assert.Equal(t, 0, fm.Len(), "failed append must not mutate")

	require.NoError(t, fm.Append([]float64{0, 1, 0}))
	assert.Equal(t, 1, fm.Len())
}

// TestAppendAll_AllOrNothing verifies a bad row anywhere in the batch
// leaves the matrix untouched.
func TestAppendAll_AllOrNothing(t *testing.T) {
	fm, err := feature.New(2)
	require.NoError(t, err)
	require.NoError(t, fm.Append([]float64{1, 0}))

	err = fm.AppendAll([][]float64{{0, 1}, {1, 0, 0}, {0, 1}})
	assert.ErrorIs(t, err, feature.ErrWidthMismatch)
	assert.Equal(t, 1, fm.Len(), "batch with one bad row must not mutate at all")

	require.NoError(t, fm.AppendAll([][]float64{{0, 1}, {1, 0}}))
	assert.Equal(t, 3, fm.Len())
}

// TestPopLast covers tail removal and the empty-matrix sentinel.
func TestPopLast(t *testing.T) {
	fm, err := feature.FromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	last, err := fm.PopLast()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, last, "PopLast must return the tail row")
	assert.Equal(t, 1, fm.Len())

	_, err = fm.PopLast()
	require.NoError(t, err)

	_, err = fm.PopLast()
	assert.ErrorIs(t, err, feature.ErrEmptyMatrix, "popping an empty matrix must error")
}

// TestRemove covers interior removal, order preservation and bounds.
func TestRemove(t *testing.T) {
	fm, err := feature.FromRows([][]float64{{1, 0}, {0, 1}, {1, 1}})
	require.NoError(t, err)

	assert.ErrorIs(t, fm.Remove(3), feature.ErrIndexOutOfRange)
	assert.ErrorIs(t, fm.Remove(-1), feature.ErrIndexOutOfRange)

	require.NoError(t, fm.Remove(1))
	assert.Equal(t, [][]float64{{1, 0}, {1, 1}}, fm.Rows(), "later rows must shift down")
}

// TestRow_Accessors verifies copies and bounds on Row/Rows/Clone.
func TestRow_Accessors(t *testing.T) {
	fm, err := feature.FromRows([][]float64{{1, 0}})
	require.NoError(t, err)

	_, err = fm.Row(1)
	assert.ErrorIs(t, err, feature.ErrIndexOutOfRange)

	row, err := fm.Row(0)
	require.NoError(t, err)
	row[0] = 42
	again, _ := fm.Row(0)
	assert.Equal(t, []float64{1, 0}, again, "Row must return a copy")

	clone := fm.Clone()
	require.NoError(t, clone.Append([]float64{0, 1}))
	assert.Equal(t, 1, fm.Len(), "mutating a clone must not affect the original")
}

// TestDense verifies the gonum export shape, contents and independence.
func TestDense(t *testing.T) {
	fm, err := feature.New(2)
	require.NoError(t, err)
	assert.Nil(t, fm.Dense(), "empty matrix exports as nil")

	require.NoError(t, fm.AppendAll([][]float64{{1, 0}, {0, 1}, {1, 0}}))
	d := fm.Dense()
	require.NotNil(t, d)

	r, c := d.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 1.0, d.At(0, 0))
	assert.Equal(t, 1.0, d.At(1, 1))

	_, err = fm.PopLast()
	require.NoError(t, err)
	r, _ = d.Dims()
	assert.Equal(t, 3, r, "the export must not track later matrix mutation")
}

// TestOneHotIndex covers the indicator scan and every rejection path.
func TestOneHotIndex(t *testing.T) {
	fm, err := feature.FromRows([][]float64{
		{0, 1, 0},     // one-hot at 1
		{0, 0, 0},     // no indicator
		{1, 1, 0},     // two indicators
		{0.5, 0.5, 0}, // fractional entries
	})
	require.NoError(t, err)

	hot, err := fm.OneHotIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 1, hot)

	_, err = fm.OneHotIndex(1)
	assert.ErrorIs(t, err, feature.ErrNotOneHot, "all-zero row is not one-hot")
	_, err = fm.OneHotIndex(2)
	assert.ErrorIs(t, err, feature.ErrNotOneHot, "two 1s are not one-hot")
	_, err = fm.OneHotIndex(3)
	assert.ErrorIs(t, err, feature.ErrNotOneHot, "fractional entries are not one-hot")
	_, err = fm.OneHotIndex(9)
	assert.ErrorIs(t, err, feature.ErrIndexOutOfRange)
}
