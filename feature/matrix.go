// SPDX-License-Identifier: MIT

package feature

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is an ordered sequence of fixed-width feature rows, one per
// observed time index.
//
// Description:
//
//	The width is the regression dimension of the owning component and is
//	fixed at construction. Rows are stored in observation order; mutation
//	is append/pop at the tail plus an explicit interior Remove for
//	externally-owned designs. Every ingested row is deep-copied, and every
//	accessor returns copies, so no caller can alias internal storage.
//
// Matrix is not safe for concurrent mutation; the owning component
// serializes access.
type Matrix struct {
	width int
	rows  [][]float64
}

// New returns an empty Matrix of the given row width.
//
// Errors:
//   - ErrBadWidth — width < 1
func New(width int) (*Matrix, error) {
	if width < 1 {
		return nil, ErrBadWidth
	}

	return &Matrix{width: width}, nil
}

// FromRows builds a Matrix from an existing row set, deep-copying every
// row. The width is taken from the first row.
//
// Errors:
//   - ErrNoRows     — rows is empty
//   - ErrBadWidth   — the first row is empty
//   - ErrRaggedRows — rows differ in length
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	width := len(rows[0])
	if width < 1 {
		return nil, ErrBadWidth
	}
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedRows
		}
	}

	m := &Matrix{width: width, rows: make([][]float64, 0, len(rows))}
	for _, row := range rows {
		m.rows = append(m.rows, copyRow(row))
	}

	return m, nil
}

// Len returns the number of rows (tracked observations).
func (m *Matrix) Len() int { return len(m.rows) }

// Width returns the fixed row width (regression dimension).
func (m *Matrix) Width() int { return m.width }

// Append adds one row at the tail.
//
// Errors:
//   - ErrWidthMismatch — len(row) != Width()
func (m *Matrix) Append(row []float64) error {
	if len(row) != m.width {
		return ErrWidthMismatch
	}
	m.rows = append(m.rows, copyRow(row))

	return nil
}

// AppendAll adds rows at the tail, all-or-nothing: every row is
// width-checked before the first mutation, so a failed call leaves the
// matrix untouched.
//
// Errors:
//   - ErrWidthMismatch — some row's length != Width()
func (m *Matrix) AppendAll(rows [][]float64) error {
	for _, row := range rows {
		if len(row) != m.width {
			return ErrWidthMismatch
		}
	}
	for _, row := range rows {
		m.rows = append(m.rows, copyRow(row))
	}

	return nil
}

// PopLast removes and returns the tail row.
//
// Errors:
//   - ErrEmptyMatrix — no rows remain
func (m *Matrix) PopLast() ([]float64, error) {
	n := len(m.rows)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	last := m.rows[n-1]
	m.rows[n-1] = nil
	m.rows = m.rows[:n-1]

	return last, nil
}

// Remove deletes the row at index i, shifting later rows down. Only the
// Dynamic component uses this: removing an interior row of a derived
// cyclic design would corrupt the pattern, so LongSeason never calls it.
//
// Errors:
//   - ErrIndexOutOfRange — i outside [0, Len)
func (m *Matrix) Remove(i int) error {
	if i < 0 || i >= len(m.rows) {
		return ErrIndexOutOfRange
	}
	copy(m.rows[i:], m.rows[i+1:])
	m.rows[len(m.rows)-1] = nil
	m.rows = m.rows[:len(m.rows)-1]

	return nil
}

// Row returns a copy of the row at index i.
//
// Errors:
//   - ErrIndexOutOfRange — i outside [0, Len)
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, ErrIndexOutOfRange
	}

	return copyRow(m.rows[i]), nil
}

// Rows returns a deep copy of all rows in observation order.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, len(m.rows))
	for i, row := range m.rows {
		out[i] = copyRow(row)
	}

	return out
}

// Clone returns an independent deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{width: m.width, rows: m.Rows()}
}

// Dense exports the matrix as a Len()×Width() gonum *mat.Dense for the
// estimator boundary. The returned matrix owns its backing array; later
// mutation of the Matrix does not affect it. An empty matrix yields nil
// (gonum rejects zero-row construction).
func (m *Matrix) Dense() *mat.Dense {
	n := len(m.rows)
	if n == 0 {
		return nil
	}
	data := make([]float64, 0, n*m.width)
	for _, row := range m.rows {
		data = append(data, row...)
	}

	return mat.NewDense(n, m.width, data)
}

// OneHotIndex returns the index of the single 1.0 entry of row i.
//
// Errors:
//   - ErrIndexOutOfRange — i outside [0, Len)
//   - ErrNotOneHot       — the row's entries do not sum to exactly 1 with a
//     single 1.0 entry and zeros elsewhere
func (m *Matrix) OneHotIndex(i int) (int, error) {
	if i < 0 || i >= len(m.rows) {
		return 0, ErrIndexOutOfRange
	}
	row := m.rows[i]
	if floats.Sum(row) != 1 {
		return 0, ErrNotOneHot
	}
	hot := -1
	for j, v := range row {
		switch v {
		case 0:
		case 1:
			if hot >= 0 {
				return 0, ErrNotOneHot
			}
			hot = j
		default:
			return 0, ErrNotOneHot
		}
	}
	if hot < 0 {
		return 0, ErrNotOneHot
	}

	return hot, nil
}

// copyRow returns a fresh copy of row.
func copyRow(row []float64) []float64 {
	out := make([]float64, len(row))
	copy(out, row)

	return out
}
