// Package pricing maps stay durations to tiered room prices.
// All functions are pure: the tier table is loaded once and never mutated,
// so an Engine is safe for concurrent use without locking.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInterval is returned when start/end cannot form a positive
// duration even after midnight-wraparound correction.
var ErrInvalidInterval = errors.New("invalid stay interval")

// toleranceHours absorbs rounding error from minute-precision manual entry:
// a stay of 2h03m still prices at the 2-hour tier.
const toleranceHours = 0.1

// StayInterval is a wall-clock check-in/check-out pair entered at the desk.
// Ephemeral — constructed per pricing query, never persisted.
type StayInterval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the stay length in fractional hours.
// An End at or before Start is interpreted as crossing midnight and is
// advanced by one calendar day; only a single wraparound is supported
// (multi-day stays are not representable with hour:minute entry).
// Equal Start and End is rejected: a zero-length stay is always operator error.
func (i StayInterval) Duration() (float64, error) {
	if i.End.Equal(i.Start) {
		return 0, ErrInvalidInterval
	}
	end := i.End
	if end.Before(i.Start) {
		end = end.Add(24 * time.Hour)
	}
	d := end.Sub(i.Start)
	if d <= 0 {
		return 0, ErrInvalidInterval
	}
	return d.Hours(), nil
}

// Tier is a (maximum duration, flat price) pricing bracket.
type Tier struct {
	Hours int
	Price decimal.Decimal
}

// Engine resolves stay prices against an ordered tier table.
type Engine struct {
	tiers        []Tier
	overflowRate decimal.Decimal // per started hour beyond the last tier
}

// DefaultTiers is the house rate card.
func DefaultTiers() []Tier {
	return []Tier{
		{Hours: 2, Price: decimal.NewFromInt(220)},
		{Hours: 4, Price: decimal.NewFromInt(280)},
		{Hours: 5, Price: decimal.NewFromInt(300)},
		{Hours: 8, Price: decimal.NewFromInt(330)},
		{Hours: 12, Price: decimal.NewFromInt(480)},
	}
}

// NewEngine validates that thresholds and prices are strictly increasing.
func NewEngine(tiers []Tier, overflowRate decimal.Decimal) (*Engine, error) {
	if len(tiers) == 0 {
		return nil, errors.New("pricing: empty tier table")
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Hours <= tiers[i-1].Hours {
			return nil, fmt.Errorf("pricing: tier thresholds must be strictly increasing (%dh after %dh)", tiers[i].Hours, tiers[i-1].Hours)
		}
		if !tiers[i].Price.GreaterThan(tiers[i-1].Price) {
			return nil, fmt.Errorf("pricing: tier prices must be strictly increasing (%s after %s)", tiers[i].Price, tiers[i-1].Price)
		}
	}
	return &Engine{tiers: tiers, overflowRate: overflowRate}, nil
}

// Default returns an Engine loaded with the house rate card and a
// 50-per-hour overflow rate beyond the 12-hour tier.
func Default() *Engine {
	e, err := NewEngine(DefaultTiers(), decimal.NewFromInt(50))
	if err != nil {
		panic(err) // static table — unreachable
	}
	return e
}

// PriceFor returns the tiered price for a stay. Tiers are evaluated in
// ascending order with an inclusive upper bound plus tolerance; the first
// match wins. Durations beyond the last tier fall back to
// lastPrice + ceil(extra hours) × overflowRate.
func (e *Engine) PriceFor(interval StayInterval) (decimal.Decimal, error) {
	hours, err := interval.Duration()
	if err != nil {
		return decimal.Zero, err
	}
	return e.priceForHours(hours), nil
}

func (e *Engine) priceForHours(hours float64) decimal.Decimal {
	for _, t := range e.tiers {
		if hours <= float64(t.Hours)+toleranceHours {
			return t.Price
		}
	}
	last := e.tiers[len(e.tiers)-1]
	extra := math.Ceil(hours - float64(last.Hours))
	return last.Price.Add(e.overflowRate.Mul(decimal.NewFromFloat(extra)))
}

// InferPaidHours maps a charged price back to its nominal duration bucket.
// Best-effort heuristic for "excess time" display in shift reports: a
// manually overridden price can land in the wrong bucket, so the result is
// approximate, never authoritative.
func (e *Engine) InferPaidHours(price decimal.Decimal) int {
	switch {
	case price.LessThanOrEqual(decimal.NewFromInt(240)):
		return 2
	case price.LessThanOrEqual(decimal.NewFromInt(290)):
		return 4
	case price.LessThanOrEqual(decimal.NewFromInt(315)):
		return 5
	case price.LessThanOrEqual(decimal.NewFromInt(350)):
		return 8
	default:
		return 12
	}
}

// QuickDurationPresets returns the fixed duration choices offered at
// check-in; the desk derives checkout time as start + chosen hours.
func (e *Engine) QuickDurationPresets() []int {
	presets := make([]int, len(e.tiers))
	for i, t := range e.tiers {
		presets[i] = t.Hours
	}
	return presets
}
