package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is an immutable cash outflow logged during a shift (supplies,
// repairs, petty cash). Amounts are stored positive; the reconciler nets
// them out of income.
type Expense struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShiftSessionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Concept        string          `gorm:"not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RegisteredBy   uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt      time.Time       `gorm:"index"`
}
