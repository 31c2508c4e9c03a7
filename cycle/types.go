package cycle

// State is the position inside the two-level cycle: Step observations into
// the Season-th outer state.
//
// The zero value State{} is the canonical starting position. A State is a
// plain value; transitions return new States and never alias the input.
//
// Valid ranges (for a Machine with parameters Period and Stay):
//   - Season ∈ [0, Period)
//   - Step   ∈ [0, Stay)
type State struct {
	// Season is the index of the currently active outer state.
	Season int
	// Step counts how many observations the current season has been
	// active, starting at 0.
	Step int
}

// Machine holds the immutable cycle parameters. All transition methods are
// pure: they read the parameters and the supplied State, mutate neither,
// and return fresh values.
type Machine struct {
	period int
	stay   int
}

// New returns a Machine for an outer cycle of period states, each held for
// stay consecutive observations.
//
// Errors:
//   - ErrBadPeriod — period < 1
//   - ErrBadStay   — stay < 1
func New(period, stay int) (Machine, error) {
	if period < 1 {
		return Machine{}, ErrBadPeriod
	}
	if stay < 1 {
		return Machine{}, ErrBadStay
	}

	return Machine{period: period, stay: stay}, nil
}

// Period returns the number of distinct outer states.
func (m Machine) Period() int { return m.period }

// Stay returns how many consecutive observations each outer state is held.
func (m Machine) Stay() int { return m.stay }

// Validate reports whether s lies inside [0, Period) × [0, Stay).
// Returns ErrStateOutOfRange otherwise.
func (m Machine) Validate(s State) error {
	if s.Season < 0 || s.Season >= m.period || s.Step < 0 || s.Step >= m.stay {
		return ErrStateOutOfRange
	}

	return nil
}
