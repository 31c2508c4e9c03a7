package cycle

// Advance — single forward transition of the two-counter cycle.
//
// Description:
//
//	Advance consumes the state s that preceded the new observation and
//	returns the state the observation lands in, together with that
//	observation's one-hot feature row.
//
// Transition rule:
//  1. Step' = (Step + 1) mod Stay.
//  2. If Step' == 0 the current run is complete: Season' = (Season + 1)
//     mod Period. Otherwise Season' = Season.
//  3. The row is one-hot at index Season'.
//
// The season therefore advances exactly once every Stay observations, on
// the observation that completes a Stay-long run. Stay=1 makes every
// observation advance the season; Period=1 makes every row [1].
//
// Complexity: O(Period) (row allocation); the transition itself is O(1).
func (m Machine) Advance(s State) (State, []float64) {
	next := State{Season: s.Season, Step: (s.Step + 1) % m.stay}
	if next.Step == 0 {
		next.Season = (s.Season + 1) % m.period
	}

	return next, m.Row(next)
}

// Retreat is the exact inverse of Advance: given the state a row landed
// in, it returns the state that preceded that row.
//
// Retreat(Advance(s)) == s for every state s with in-range counters; this
// round-trip identity is what keeps the feature matrix consistent when the
// latest observation is removed.
//
// Complexity: O(1).
func (m Machine) Retreat(s State) State {
	prev := s
	if s.Step == 0 {
		prev.Step = m.stay - 1
		if s.Season == 0 {
			prev.Season = m.period - 1
		} else {
			prev.Season = s.Season - 1
		}
	} else {
		prev.Step = s.Step - 1
	}

	return prev
}

// Row returns the one-hot feature row selecting s.Season: length Period,
// a single 1 at index s.Season, zeros elsewhere. The slice is freshly
// allocated on every call.
//
// Complexity: O(Period).
func (m Machine) Row(s State) []float64 {
	row := make([]float64, m.period)
	row[s.Season] = 1

	return row
}

// GenerateRows applies Advance n times starting from start, collecting the
// produced rows in order, and returns them together with the final state.
// The final state is the one a further Advance would consume, so feeding
// it back into GenerateRows continues the cycle seamlessly.
//
// n <= 0 yields a nil row set and the start state unchanged.
//
// Complexity: O(n·Period). Memory: O(n·Period).
func (m Machine) GenerateRows(start State, n int) ([][]float64, State) {
	if n <= 0 {
		return nil, start
	}

	rows := make([][]float64, 0, n)
	s := start
	var row []float64
	for i := 0; i < n; i++ {
		s, row = m.Advance(s)
		rows = append(rows, row)
	}

	return rows, s
}
