package schedule

// Calculator computes valid booking start times for a date. It only reads
// through its sources and never mutates them, so it is safe to re-run at both
// selection time and commit time; the commit-time re-run is the sole
// concurrency safeguard against two clients picking the same slot.
type Calculator struct {
	Resolver *Resolver
	Bookings BookingSource
}

// AvailableStarts returns, in grid order, every label a booking of
// durationMin minutes could start at on the given date: the whole block must
// lie inside the day's open grid and must not touch an occupied slot.
// A closed date yields an empty result.
func (c *Calculator) AvailableStarts(date string, durationMin int) ([]string, error) {
	day := c.Resolver.ResolveDay(date)
	if day.Closed {
		return []string{}, nil
	}

	open := make(map[string]struct{}, len(day.Slots))
	for _, label := range day.Slots {
		open[label] = struct{}{}
	}
	busy := BusyLabels(date, c.Bookings)

	starts := []string{}
	for _, label := range day.Slots {
		block, err := BuildBlock(label, durationMin, c.Resolver.StepMin())
		if err != nil {
			return nil, err
		}
		if !blockFits(block, open, busy) {
			continue
		}
		starts = append(starts, label)
	}
	return starts, nil
}

func blockFits(block []string, open, busy map[string]struct{}) bool {
	for _, label := range block {
		// Block must not run past closing or into an override gap.
		if _, ok := open[label]; !ok {
			return false
		}
		if _, taken := busy[label]; taken {
			return false
		}
	}
	return true
}
