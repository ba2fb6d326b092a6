package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OpenShiftRequest struct {
	// Date in "2006-01-02"; defaults to today when empty
	Date         string          `json:"date"          validate:"omitempty,datetime=2006-01-02"`
	Shift        string          `json:"shift"         validate:"required,oneof=morning afternoon night"`
	OpeningFloat decimal.Decimal `json:"opening_float" validate:"min=0"`
}

// CloseShiftRequest carries the blind cash count. The expected amount is
// computed only after the declaration is received.
type CloseShiftRequest struct {
	ShiftSessionID string          `json:"shift_session_id" validate:"required,uuid"`
	DeclaredCash   decimal.Decimal `json:"declared_cash"    validate:"min=0"`
	Notes          *string         `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReconciliationResponse struct {
	RoomRevenue        decimal.Decimal  `json:"room_revenue"`
	ConsumptionRevenue decimal.Decimal  `json:"consumption_revenue"`
	TotalExpenses      decimal.Decimal  `json:"total_expenses"`
	NetIncome          decimal.Decimal  `json:"net_income"`
	ExpectedCash       decimal.Decimal  `json:"expected_cash"`
	DeclaredCash       *decimal.Decimal `json:"declared_cash,omitempty"`
	Variance           *decimal.Decimal `json:"variance,omitempty"`
	Classification     string           `json:"classification,omitempty"`
}

// PendingStayResponse lists revenue not yet in totals: rooms still occupied.
type PendingStayResponse struct {
	OccupancyID string `json:"occupancy_id"`
	RoomNumber  int    `json:"room_number"`
	CheckIn     string `json:"check_in"`
}

type ShiftSessionResponse struct {
	ID             string                  `json:"id"`
	Date           string                  `json:"date"`
	Shift          string                  `json:"shift"`
	OpeningFloat   decimal.Decimal         `json:"opening_float"`
	Status         string                  `json:"status"`
	Reconciliation *ReconciliationResponse `json:"reconciliation,omitempty"`
	PendingStays   []PendingStayResponse   `json:"pending_stays,omitempty"`
	Summary        *string                 `json:"summary,omitempty"`
	Notes          *string                 `json:"notes,omitempty"`
	OpenedAt       string                  `json:"opened_at"`
	ClosedAt       *string                 `json:"closed_at,omitempty"`
}
