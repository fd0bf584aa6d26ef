package schedule

import "fmt"

// DaySchedule is the resolved shape of a single calendar date: either fully
// closed, or open with an ordered list of valid slot starts.
type DaySchedule struct {
	Closed bool
	Slots  []string
}

// OverrideSource exposes per-date schedule exceptions. A present entry with a
// nil slot list means the date is closed; a non-nil list replaces the base
// grid verbatim.
type OverrideSource interface {
	Override(date string) ([]string, bool)
}

// Resolver derives a date's open grid from overrides falling back to the base
// weekly window. Overrides always win, so the base window can change globally
// without touching dates the admin already adjusted.
type Resolver struct {
	overrides OverrideSource
	baseGrid  []string
	stepMin   int
}

func NewResolver(overrides OverrideSource, baseStart, baseEnd string, stepMin int) (*Resolver, error) {
	grid, err := GenerateGrid(baseStart, baseEnd, stepMin)
	if err != nil {
		return nil, fmt.Errorf("base schedule %s-%s: %w", baseStart, baseEnd, err)
	}
	return &Resolver{overrides: overrides, baseGrid: grid, stepMin: stepMin}, nil
}

// StepMin returns the grid step the resolver was built with.
func (r *Resolver) StepMin() int {
	return r.stepMin
}

// ResolveDay returns the date's schedule. Callers receive fresh copies and
// may not mutate ledger state through them.
func (r *Resolver) ResolveDay(date string) DaySchedule {
	if slots, ok := r.overrides.Override(date); ok {
		if slots == nil {
			return DaySchedule{Closed: true}
		}
		return DaySchedule{Slots: append([]string(nil), slots...)}
	}
	return DaySchedule{Slots: append([]string(nil), r.baseGrid...)}
}
