// Package dlmkit provides building blocks for Bayesian dynamic linear
// models (DLMs): regression components whose feature matrices feed a
// Kalman-style state-space estimator.
//
// 🚀 What is dlmkit?
//
//	A small, deterministic library of DLM regression components:
//	  • cycle/     — the two-counter cyclic state machine behind long
//	    seasonality: pure Advance/Retreat transitions + one-hot rows
//	  • feature/   — the validated feature-matrix container shared by all
//	    components, with a gonum export for the estimator boundary
//	  • component/ — the components themselves: Dynamic (features supplied
//	    by the caller) and LongSeason (features derived from a running
//	    season × stay cycle)
//
// ✨ Why choose dlmkit?
//
//   - Value-in/value-out transitions — the cyclic state is an explicit
//     value, so Retreat(Advance(s)) == s is testable in isolation
//   - Consistent mutation — append and pop-last move the feature matrix
//     and the counter state together, never one without the other
//   - Estimator-friendly — feature matrices export as *mat.Dense
//
// ⚙️ Quick taste:
//
//	opts := component.DefaultOptions() // period=4, stay=7, discount=0.99
//	ls, err := component.NewLongSeason(14, &opts)
//	if err != nil { ... }
//	ls.AppendNewData(7)    // cycle continues seamlessly
//	_ = ls.PopLast()       // tail contraction, state rolls back one step
//
// Model estimation, parameter learning and persistence live in the
// surrounding framework, not here.
package dlmkit
