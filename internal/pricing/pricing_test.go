package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
}

func TestPriceForTierBoundaries(t *testing.T) {
	e := Default()

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int64
	}{
		{"exactly 2h", at(10, 0), at(12, 0), 220},
		{"2h03m within tolerance", at(10, 0), at(12, 3), 220},
		{"2h09m after tolerance", at(10, 0), at(12, 9), 280},
		{"4h06m within tolerance", at(10, 0), at(14, 6), 280},
		{"4h09m after tolerance", at(10, 0), at(14, 9), 300},
		{"exactly 5h", at(10, 0), at(15, 0), 300},
		{"exactly 8h", at(10, 0), at(18, 0), 330},
		{"exactly 12h", at(8, 0), at(20, 0), 480},
		{"13h overflow one started hour", at(8, 0), at(21, 0), 530},
		{"14h30m overflow three started hours", at(6, 0), at(20, 30), 630},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := e.PriceFor(StayInterval{Start: tc.start, End: tc.end})
			require.NoError(t, err)
			assert.Equal(t, decimal.NewFromInt(tc.expected).String(), price.String())
		})
	}
}

func TestPriceForMidnightWraparound(t *testing.T) {
	e := Default()

	// 23:00 → 01:00 is a two-hour stay, not a negative one
	price, err := e.PriceFor(StayInterval{Start: at(23, 0), End: at(1, 0)})
	require.NoError(t, err)
	assert.Equal(t, "220", price.String())
}

func TestPriceForEqualTimesRejected(t *testing.T) {
	e := Default()

	_, err := e.PriceFor(StayInterval{Start: at(10, 0), End: at(10, 0)})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestPriceForIsMonotone(t *testing.T) {
	// Longer stays never cost less — scan 15 minutes at a time across 24h
	e := Default()
	start := at(9, 0)
	prev := decimal.Zero
	for m := 15; m <= 24*60; m += 15 {
		price, err := e.PriceFor(StayInterval{Start: start, End: start.Add(time.Duration(m) * time.Minute)})
		require.NoError(t, err)
		assert.True(t, price.GreaterThanOrEqual(prev),
			"price dropped from %s to %s at %d minutes", prev, price, m)
		prev = price
	}
}

func TestInferPaidHoursRoundTripsCanonicalPrices(t *testing.T) {
	e := Default()

	expected := map[int64]int{220: 2, 280: 4, 300: 5, 330: 8, 480: 12}
	for price, hours := range expected {
		assert.Equal(t, hours, e.InferPaidHours(decimal.NewFromInt(price)))
	}
}

func TestQuickDurationPresets(t *testing.T) {
	assert.Equal(t, []int{2, 4, 5, 8, 12}, Default().QuickDurationPresets())
}

func TestNewEngineRejectsBadTables(t *testing.T) {
	rate := decimal.NewFromInt(50)

	_, err := NewEngine(nil, rate)
	assert.Error(t, err)

	_, err = NewEngine([]Tier{
		{Hours: 4, Price: decimal.NewFromInt(280)},
		{Hours: 2, Price: decimal.NewFromInt(220)},
	}, rate)
	assert.Error(t, err)

	_, err = NewEngine([]Tier{
		{Hours: 2, Price: decimal.NewFromInt(280)},
		{Hours: 4, Price: decimal.NewFromInt(220)},
	}, rate)
	assert.Error(t, err)
}
