package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseLabel converts a canonical "HH:MM" label into minutes from midnight.
func ParseLabel(label string) (int, error) {
	parts := strings.Split(label, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return h*60 + m, nil
}

// FormatLabel renders minutes from midnight as a zero-padded "HH:MM" label.
// Labels are compared with exact string equality everywhere, so this is the
// only place a label may be produced from a number.
func FormatLabel(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateGrid emits the labels spaced stepMin minutes apart in [start, end).
// An inverted or empty window yields an empty grid.
func GenerateGrid(start, end string, stepMin int) ([]string, error) {
	if stepMin <= 0 {
		return nil, ErrInvalidStep
	}
	startMin, err := ParseLabel(start)
	if err != nil {
		return nil, err
	}
	endMin, err := ParseLabel(end)
	if err != nil {
		return nil, err
	}
	return gridBetween(startMin, endMin, stepMin), nil
}

func gridBetween(startMin, endMin, stepMin int) []string {
	grid := []string{}
	for cur := startMin; cur < endMin; cur += stepMin {
		grid = append(grid, FormatLabel(cur))
	}
	return grid
}

// BuildBlock returns the durationMin/stepMin consecutive labels a booking
// starting at start occupies.
func BuildBlock(start string, durationMin, stepMin int) ([]string, error) {
	if stepMin <= 0 {
		return nil, ErrInvalidStep
	}
	if durationMin <= 0 || durationMin%stepMin != 0 {
		return nil, fmt.Errorf("%w: %d min with step %d", ErrInvalidDuration, durationMin, stepMin)
	}
	startMin, err := ParseLabel(start)
	if err != nil {
		return nil, err
	}

	slots := durationMin / stepMin
	block := make([]string, 0, slots)
	for i := 0; i < slots; i++ {
		block = append(block, FormatLabel(startMin+i*stepMin))
	}
	return block, nil
}

// ParseHourRanges parses admin input like "10-12" or "10-12, 16-18" into the
// union of grid labels covered by the ranges. Ranges are hour-granular, may
// overlap, and the result is deduplicated and sorted. A malformed part or a
// range with end <= start is rejected as a whole.
func ParseHourRanges(text string, stepMin int) ([]string, error) {
	if stepMin <= 0 {
		return nil, ErrInvalidStep
	}

	seen := map[string]struct{}{}
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		bounds := strings.Split(part, "-")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, part)
		}
		from, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, part)
		}
		to, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, part)
		}
		// End hour 24 is allowed so a range can run until midnight.
		if from < 0 || from > 23 || to < 1 || to > 24 || to <= from {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRangeSyntax, part)
		}
		for _, label := range gridBetween(from*60, to*60, stepMin) {
			seen[label] = struct{}{}
		}
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	// Zero-padded labels sort chronologically.
	sort.Strings(labels)
	return labels, nil
}
