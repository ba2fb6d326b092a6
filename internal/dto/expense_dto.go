package dto

import "github.com/shopspring/decimal"

type RegisterExpenseRequest struct {
	ShiftSessionID string          `json:"shift_session_id" validate:"required,uuid"`
	Concept        string          `json:"concept"          validate:"required,min=3"`
	Amount         decimal.Decimal `json:"amount"           validate:"required,gt=0"`
}

type ExpenseResponse struct {
	ID        string          `json:"id"`
	Concept   string          `json:"concept"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
}
