package shiftcalc

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a negative monetary input reaches the
// reconciler (event amount, opening float, or declared cash).
var ErrInvalidAmount = errors.New("invalid monetary amount")

// EventKind tags a FinancialEvent.
type EventKind string

const (
	KindRoom        EventKind = "room"
	KindConsumption EventKind = "consumption"
	KindExpense     EventKind = "expense"
)

// FinancialEvent is a settled, timestamped charge or expense. The source of
// truth lives in the persistence layer; the reconciler only consumes an
// already-fetched collection.
type FinancialEvent struct {
	Kind       EventKind
	Amount     decimal.Decimal
	OccurredAt time.Time
}

// Variance classifications. The one-unit tolerance band absorbs coin rounding.
const (
	VarianceBalanced = "balanced"
	VarianceSurplus  = "surplus"
	VarianceShortage = "shortage"
)

// Result is the outcome of reconciling one shift window. Produced fresh per
// request; never persisted here.
type Result struct {
	RoomRevenue        decimal.Decimal
	ConsumptionRevenue decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetIncome          decimal.Decimal
	ExpectedCash       decimal.Decimal
	DeclaredCash       *decimal.Decimal
	Variance           *decimal.Decimal
	Classification     string
}

// Reconcile filters events into the window (inclusive of both bounds), sums
// them by kind, and derives net income and expected drawer cash:
//
//	netIncome    = roomRevenue + consumptionRevenue − totalExpenses
//	expectedCash = openingFloat + netIncome
//
// Expenses are already netted out of netIncome; expectedCash is not reduced
// by them again. When declaredCash is present, variance = declared − expected
// and is classified against a one-unit tolerance band. An empty event set is
// valid: all revenue is zero and netIncome may go negative from expenses alone.
func Reconcile(events []FinancialEvent, w Window, openingFloat decimal.Decimal, declaredCash *decimal.Decimal) (Result, error) {
	if openingFloat.IsNegative() {
		return Result{}, ErrInvalidAmount
	}
	if declaredCash != nil && declaredCash.IsNegative() {
		return Result{}, ErrInvalidAmount
	}

	res := Result{
		RoomRevenue:        decimal.Zero,
		ConsumptionRevenue: decimal.Zero,
		TotalExpenses:      decimal.Zero,
	}
	for _, ev := range events {
		if ev.Amount.IsNegative() {
			return Result{}, ErrInvalidAmount
		}
		if !w.Contains(ev.OccurredAt) {
			continue
		}
		switch ev.Kind {
		case KindRoom:
			res.RoomRevenue = res.RoomRevenue.Add(ev.Amount)
		case KindConsumption:
			res.ConsumptionRevenue = res.ConsumptionRevenue.Add(ev.Amount)
		case KindExpense:
			res.TotalExpenses = res.TotalExpenses.Add(ev.Amount)
		}
	}

	res.NetIncome = res.RoomRevenue.Add(res.ConsumptionRevenue).Sub(res.TotalExpenses)
	res.ExpectedCash = openingFloat.Add(res.NetIncome)

	if declaredCash != nil {
		declared := *declaredCash
		variance := declared.Sub(res.ExpectedCash)
		res.DeclaredCash = &declared
		res.Variance = &variance
		res.Classification = classifyVariance(variance)
	}
	return res, nil
}

// classifyVariance returns balanced | surplus | shortage.
func classifyVariance(v decimal.Decimal) string {
	switch {
	case v.Abs().LessThan(decimal.NewFromInt(1)):
		return VarianceBalanced
	case v.IsPositive():
		return VarianceSurplus
	default:
		return VarianceShortage
	}
}

// OpenStay is a not-yet-settled room occupancy, carried separately from
// FinancialEvent because it has no charge yet.
type OpenStay struct {
	ID         string
	RoomNumber int
	CheckIn    time.Time
}

// ActiveAsOf returns open stays whose check-in falls inside the window.
// These are pending revenue: shown on reports, excluded from totals until
// checkout settles them.
func ActiveAsOf(stays []OpenStay, w Window) []OpenStay {
	var active []OpenStay
	for _, s := range stays {
		if w.Contains(s.CheckIn) {
			active = append(active, s)
		}
	}
	return active
}
