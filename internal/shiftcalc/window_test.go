package shiftcalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

func TestWindowBounds(t *testing.T) {
	morning := WindowFor(testDate, Morning)
	assert.Equal(t, time.Date(2026, 5, 10, 7, 0, 0, 0, time.UTC), morning.Start)
	assert.Equal(t, time.Date(2026, 5, 10, 13, 59, 59, 999000000, time.UTC), morning.End)

	afternoon := WindowFor(testDate, Afternoon)
	assert.Equal(t, time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC), afternoon.Start)
	assert.Equal(t, time.Date(2026, 5, 10, 20, 59, 59, 999000000, time.UTC), afternoon.End)

	night := WindowFor(testDate, Night)
	assert.Equal(t, time.Date(2026, 5, 10, 21, 0, 0, 0, time.UTC), night.Start)
	// Night shift spills into the next calendar date
	assert.Equal(t, time.Date(2026, 5, 11, 6, 59, 59, 999000000, time.UTC), night.End)
}

func TestWindowsTileWithoutGapOrOverlap(t *testing.T) {
	morning := WindowFor(testDate, Morning)
	afternoon := WindowFor(testDate, Afternoon)
	night := WindowFor(testDate, Night)
	nextMorning := WindowFor(testDate.AddDate(0, 0, 1), Morning)

	assert.Equal(t, time.Millisecond, afternoon.Start.Sub(morning.End))
	assert.Equal(t, time.Millisecond, night.Start.Sub(afternoon.End))
	assert.Equal(t, time.Millisecond, nextMorning.Start.Sub(night.End))
}

func TestWindowContainsIsInclusiveBothEnds(t *testing.T) {
	w := WindowFor(testDate, Afternoon)

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Millisecond)))
	assert.False(t, w.Contains(w.End.Add(time.Millisecond)))
}

func TestParseLabel(t *testing.T) {
	for _, s := range []string{"morning", "afternoon", "night"} {
		label, err := ParseLabel(s)
		require.NoError(t, err)
		assert.Equal(t, Label(s), label)
	}

	_, err := ParseLabel("graveyard")
	assert.Error(t, err)
}
