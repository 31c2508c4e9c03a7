// Package cycle implements the two-counter cyclic state machine behind
// long-seasonality regression features.
//
// 🚀 What is cycle?
//
//	A long season is an outer cycle of Period distinct states where each
//	state stays active for Stay consecutive observations:
//	  Period=4, Stay=3  →  0,0,0,1,1,1,2,2,2,3,3,3,0,0,0,…
//	Each observation is encoded as a one-hot row of length Period selecting
//	the active season, usable directly as a regression indicator.
//
// ✨ Key properties:
//   - Pure transitions — state goes in as a value and comes out as a value;
//     the Machine itself never mutates
//   - Exact inverse — Retreat(Advance(s)) == s for every in-range state,
//     so removing the latest observation restores the machine's history
//   - No special cases — Period=1 and Stay=1 fall out of the modular
//     arithmetic untouched
//
// ⚙️ Usage:
//
//	m, err := cycle.New(4, 7)
//	if err != nil { ... }
//	rows, end := m.GenerateRows(cycle.State{}, 14)
//	// rows[6] == [0 1 0 0]: the season advances on the observation that
//	// completes each 7-long run.
//	_ = end // feed back into GenerateRows to continue the cycle
//
// Complexity: every transition is O(1); row generation is O(Period) per row.
package cycle
