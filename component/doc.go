// Package component implements dlmkit's DLM regression components: the
// Dynamic base component (features supplied by the caller) and the
// LongSeason component (features derived from a running cyclic pattern).
//
// 🚀 What is a component?
//
//	A regression component owns a feature matrix with one row per observed
//	time index, plus the metadata the surrounding estimation framework
//	reads: a name, a dispatch tag, a regression dimension, an observation
//	count and a discount factor. The estimator consumes the rows as the
//	time-varying regression design; this package never runs estimation.
//
// ✨ The two components:
//
//   - Dynamic — the caller supplies the design matrix. Rows may be
//     appended in batches and removed at any index: the pattern belongs
//     to the caller, so interior removal cannot corrupt anything.
//   - LongSeason — the design is derived from a Period×Stay cycle and the
//     component keeps its cyclic counter state in lockstep with the
//     matrix. Growth continues the running cycle; contraction is
//     tail-only (PopLast), because deleting an interior date while
//     keeping the future pattern fixed is a different primitive that
//     belongs to the framework's ignore mechanism, not here.
//
// ⚙️ Usage:
//
//	opts := component.DefaultOptions()
//	opts.Period, opts.Stay = 4, 7
//	ls, err := component.NewLongSeason(len(data), &opts)
//	if err != nil { ... }
//	ls.AppendNewData(7)          // one more week of derived rows
//	if err := ls.PopLast(); err != nil { ... }
//
// Mutating methods are not safe for concurrent use on one instance;
// the owning model serializes access.
package component
