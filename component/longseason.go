package component

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/dlmkit/cycle"
	"github.com/katalvlaran/dlmkit/feature"
)

// LongSeason — a regression component for two-level cyclic seasonality.
//
// Description:
//
//	A LongSeason models an outer cycle of Period states where each state
//	stays active for Stay consecutive observations, e.g. a week-of-month
//	pattern (Period=4, Stay=7) layered under a shorter day-of-week
//	seasonality. Unlike Dynamic, the feature rows are not supplied by the
//	caller: they are derived from a cyclic counter the component keeps in
//	lockstep with the matrix, so growth continues the running cycle and
//	tail contraction rolls the counter back exactly one step.
//
// Invariants (hold after every exported call):
//   - matrix length == ObservationCount()
//   - every row is one-hot over [0, Period)
//   - the stored counter state is the predecessor state of the row that
//     would be generated next
//
// Contraction is tail-only. Deleting an interior date while keeping the
// future pattern fixed is a different primitive, owned by the framework's
// ignore mechanism; for externally-owned designs use Dynamic.Popout.
type LongSeason struct {
	base

	machine cycle.Machine
	state   cycle.State
	log     *zap.SugaredLogger
}

// NewLongSeason builds a LongSeason component tracking the given number of
// observations, deriving one one-hot feature row per observation from the
// zero cycle state onward. A nil opts means DefaultOptions().
//
// Validation order: Period, Stay, Discount, then the length check
// Period < observations.
//
// Errors:
//   - cycle.ErrBadPeriod — Period < 1
//   - cycle.ErrBadStay   — Stay < 1
//   - ErrBadDiscount     — Discount outside (0, 1]
//   - ErrConfiguration   — Period >= observations
func NewLongSeason(observations int, opts *Options) (*LongSeason, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	m, err := cycle.New(o.Period, o.Stay)
	if err != nil {
		return nil, err
	}

	fm, err := feature.New(o.Period)
	if err != nil {
		return nil, err
	}
	rows, state := m.GenerateRows(cycle.State{}, observations)
	if err = fm.AppendAll(rows); err != nil {
		return nil, err
	}

	b, err := newBase(fm, o.Discount, o.Name, DefaultLongSeasonName)
	if err != nil {
		return nil, err
	}

	log := o.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	ls := &LongSeason{base: b, machine: m, state: state, log: log}
	if err = ls.validateDataLength(); err != nil {
		return nil, err
	}

	return ls, nil
}

// ComponentType returns TypeLongSeason.
func (ls *LongSeason) ComponentType() Type { return TypeLongSeason }

// Period returns the number of distinct outer states.
func (ls *LongSeason) Period() int { return ls.machine.Period() }

// Stay returns how many consecutive observations each outer state is held.
func (ls *LongSeason) Stay() int { return ls.machine.Stay() }

// State returns the current cycle counter: the predecessor state of the
// next row AppendNewData would generate.
func (ls *LongSeason) State() cycle.State { return ls.state }

// AppendNewData derives count additional feature rows continuing the
// running cycle from the stored counter state, then advances the counter
// to match. count <= 0 is a no-op. Never fails: the derived rows always
// match the matrix width.
func (ls *LongSeason) AppendNewData(count int) {
	if count <= 0 {
		return
	}

	rows, state := ls.machine.GenerateRows(ls.state, count)
	// The derived rows are one-hot of width Period, so AppendAll cannot
	// reject them.
	_ = ls.features.AppendAll(rows)
	ls.state = state
}

// PopLast removes the latest observation: the tail feature row is dropped
// and the cycle counter retreats one step, as though that observation had
// never been generated. Matrix and counter move together or not at all.
//
// Every successful call warns on the configured logger: tail removal
// shifts the seasonal pattern for all later observations. Callers who
// want the future pattern kept fixed need the framework's ignore
// mechanism instead.
//
// Errors:
//   - ErrEmptyMatrix — no tracked observations remain
func (ls *LongSeason) PopLast() error {
	if _, err := ls.features.PopLast(); err != nil {
		return ErrEmptyMatrix
	}
	ls.state = ls.machine.Retreat(ls.state)

	ls.log.Warnw("popping the latest observation shifts the seasonal pattern for all future days; "+
		"to keep the future pattern unchanged, ignore the date instead",
		"component", ls.name,
		"observations", ls.features.Len(),
		"season", ls.state.Season,
		"step", ls.state.Step,
	)

	return nil
}
