package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizonDates(t *testing.T) {
	now := time.Date(2026, 2, 25, 13, 45, 0, 0, time.UTC)

	dates := HorizonDates(now, 14)
	require.Len(t, dates, 14)
	assert.Equal(t, "2026-02-25", dates[0])
	// Crosses the month boundary correctly.
	assert.Equal(t, "2026-03-01", dates[4])
	assert.Equal(t, "2026-03-10", dates[13])
}

func TestWithinHorizon(t *testing.T) {
	now := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)

	assert.True(t, WithinHorizon("2026-02-25", now, 14))
	assert.True(t, WithinHorizon("2026-03-10", now, 14))
	assert.False(t, WithinHorizon("2026-03-11", now, 14))
	assert.False(t, WithinHorizon("2026-02-24", now, 14))
	assert.False(t, WithinHorizon("not-a-date", now, 14))
}
