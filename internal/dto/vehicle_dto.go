package dto

type RegisterVehicleRequest struct {
	Plate       string `json:"plate"       validate:"required,max=16"`
	Description string `json:"description"`
}

type ReportIncidentRequest struct {
	VehicleID   *string `json:"vehicle_id" validate:"omitempty,uuid"`
	RoomID      *string `json:"room_id"    validate:"omitempty,uuid"`
	Description string  `json:"description" validate:"required,min=5"`
}

type VehicleResponse struct {
	ID          string `json:"id"`
	Plate       string `json:"plate"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type IncidentResponse struct {
	ID          string  `json:"id"`
	VehicleID   *string `json:"vehicle_id,omitempty"`
	RoomID      *string `json:"room_id,omitempty"`
	Description string  `json:"description"`
	ReportedBy  string  `json:"reported_by"`
	CreatedAt   string  `json:"created_at"`
}
