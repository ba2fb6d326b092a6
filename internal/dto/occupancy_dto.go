package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CheckInRequest struct {
	RoomID         string  `json:"room_id"          validate:"required,uuid"`
	ShiftSessionID string  `json:"shift_session_id" validate:"required,uuid"`
	VehiclePlate   *string `json:"vehicle_plate"    validate:"omitempty,max=16"`
}

type CheckOutRequest struct {
	OccupancyID string `json:"occupancy_id" validate:"required,uuid"`
	// OverridePrice replaces the tiered price for negotiated rates
	OverridePrice *decimal.Decimal `json:"override_price" validate:"omitempty"`
}

type QuoteRequest struct {
	// Wall-clock times, "15:04" — minute precision from manual entry
	Start string `json:"start" validate:"required"`
	End   string `json:"end"   validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OccupancyResponse struct {
	ID           string           `json:"id"`
	RoomID       string           `json:"room_id"`
	RoomNumber   int              `json:"room_number"`
	CheckIn      string           `json:"check_in"`
	CheckOut     *string          `json:"check_out,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Overridden   bool             `json:"overridden"`
	VehiclePlate *string          `json:"vehicle_plate,omitempty"`
	Status       string           `json:"status"`
}

type QuoteResponse struct {
	Hours float64         `json:"hours"`
	Price decimal.Decimal `json:"price"`
}

type PresetsResponse struct {
	Hours []int `json:"hours"`
}
