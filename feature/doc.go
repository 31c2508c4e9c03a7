// SPDX-License-Identifier: MIT

// Package feature provides the validated feature-matrix container shared
// by all dlmkit regression components.
//
// 🚀 What is feature?
//
//	A Matrix is an ordered sequence of fixed-width float64 rows, one per
//	observed time index. Components own exactly one Matrix each and mutate
//	it only from the tail (append / pop-last), except for the Dynamic
//	component's explicit interior Remove.
//
// ✨ Key guarantees:
//   - Width is fixed at construction; every ingested row is width-checked
//     before any mutation happens (all-or-nothing AppendAll)
//   - All accessors return copies — callers can never alias internal rows
//   - Dense() exports the matrix as a gonum *mat.Dense for the estimator
//
// ⚙️ Usage:
//
//	fm, err := feature.New(4)
//	if err != nil { ... }
//	_ = fm.Append([]float64{1, 0, 0, 0})
//	d := fm.Dense() // 1×4 gonum view for the state-space recursion
//
// All errors are package sentinels matched via errors.Is.
package feature
