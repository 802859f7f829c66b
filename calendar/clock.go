package calendar

import "time"

// =============================================================================
// CLOCK - Injectable source of "today"
// =============================================================================

// Clock supplies the current date. Every date-boundary rule in the engine
// (past-date checks, tenure, nightly re-accrual) reads "today" through a
// Clock so tests can pin it.
type Clock interface {
	Today() Date
}

type systemClock struct{}

func (systemClock) Today() Date { return FromTime(time.Now()) }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock always reports the same date. For deterministic tests.
type FixedClock struct {
	Date Date
}

func (c FixedClock) Today() Date { return c.Date }
