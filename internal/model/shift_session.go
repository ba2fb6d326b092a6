package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShiftSession represents the lifecycle of one cash shift at the front desk.
// Status: "open" | "closed"
type ShiftSession struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// Date + Shift identify the reconciliation window (morning/afternoon/night)
	Date         time.Time       `gorm:"type:date;not null;index:idx_shift_date_label"`
	Shift        string          `gorm:"type:varchar(10);not null;index:idx_shift_date_label"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null"`
	OpeningFloat decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	// Reconciliation results, computed once on close
	RoomRevenue        *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ConsumptionRevenue *decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalExpenses      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	NetIncome          *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ExpectedCash       *decimal.Decimal `gorm:"type:decimal(12,2)"`
	DeclaredCash       *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Variance           *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// Classification: "balanced" | "surplus" | "shortage"
	Classification *string `gorm:"type:varchar(10)"`
	Notes          *string

	Status string `gorm:"type:varchar(10);not null;default:'open';index"`

	// AI narrative summary, filled asynchronously by the summary worker.
	// SummaryState: "pending" | "done" | "failed"
	Summary            *string
	SummaryState       *string `gorm:"type:varchar(10)"`
	SummaryRetryCount  int     `gorm:"not null;default:0"`
	NextSummaryRetryAt *time.Time
	LastSummaryError   *string

	// ReportPath points at the generated shift-close PDF
	ReportPath *string

	OpenedAt time.Time
	ClosedAt *time.Time
}
