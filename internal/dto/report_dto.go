package dto

import "github.com/shopspring/decimal"

// StayReportEntry is one settled stay in a shift report, with the
// excess-time heuristic derived from the charged price.
type StayReportEntry struct {
	OccupancyID string          `json:"occupancy_id"`
	RoomNumber  int             `json:"room_number"`
	CheckIn     string          `json:"check_in"`
	CheckOut    string          `json:"check_out"`
	Price       decimal.Decimal `json:"price"`
	// PaidHours is inferred from the price; approximate when the price was
	// manually overridden.
	PaidHours   int     `json:"paid_hours"`
	ActualHours float64 `json:"actual_hours"`
	ExcessHours float64 `json:"excess_hours"`
}

type ShiftReportResponse struct {
	Session      ShiftSessionResponse  `json:"session"`
	Stays        []StayReportEntry     `json:"stays"`
	Consumptions []ConsumptionResponse `json:"consumptions"`
	Expenses     []ExpenseResponse     `json:"expenses"`
}

type ShiftHistoryResponse struct {
	Sessions []ShiftSessionResponse `json:"sessions"`
	Total    int64                  `json:"total"`
}
