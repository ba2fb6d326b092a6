package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name  string          `json:"name"  validate:"required,min=2"`
	Price decimal.Decimal `json:"price" validate:"required,gt=0"`
	Stock int             `json:"stock" validate:"min=0"`
}

type UpdateProductRequest struct {
	Name  *string          `json:"name"  validate:"omitempty,min=2"`
	Price *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
}

type AdjustStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Reason string `json:"reason" validate:"required,min=3"`
}

// RegisterConsumptionRequest charges a product sale to exactly one of a room
// or an employee. The service enforces the exclusivity.
type RegisterConsumptionRequest struct {
	ShiftSessionID string  `json:"shift_session_id" validate:"required,uuid"`
	ProductID      string  `json:"product_id"       validate:"required,uuid"`
	RoomID         *string `json:"room_id"          validate:"omitempty,uuid"`
	EmployeeID     *string `json:"employee_id"      validate:"omitempty,uuid"`
	Quantity       int     `json:"quantity"         validate:"required,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Stock  int             `json:"stock"`
	Active bool            `json:"active"`
}

type ConsumptionResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	RoomID      *string         `json:"room_id,omitempty"`
	EmployeeID  *string         `json:"employee_id,omitempty"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   string          `json:"created_at"`
}
