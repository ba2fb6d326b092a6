package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateRoomRequest struct {
	Number int     `json:"number" validate:"required,min=1"`
	Type   string  `json:"type"   validate:"required,oneof=standard suite jacuzzi"`
	Notes  *string `json:"notes"`
}

type UpdateRoomRequest struct {
	Type  *string `json:"type"  validate:"omitempty,oneof=standard suite jacuzzi"`
	Notes *string `json:"notes"`
}

type SetRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available cleaning maintenance"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RoomResponse struct {
	ID     string  `json:"id"`
	Number int     `json:"number"`
	Type   string  `json:"type"`
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
	// OccupancyID is set while the room is occupied
	OccupancyID *string `json:"occupancy_id,omitempty"`
	CheckIn     *string `json:"check_in,omitempty"`
}
