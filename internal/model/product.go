package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a food/beverage item sold to rooms or employees.
type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string          `gorm:"not null;uniqueIndex"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock     int             `gorm:"not null;default:0"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Consumption is an immutable point-of-sale charge, associated with either a
// room (guest consumption) or an employee, never both.
type Consumption struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShiftSessionID uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID        `gorm:"type:uuid;not null"`
	RoomID         *uuid.UUID       `gorm:"type:uuid;index"`
	EmployeeID     *uuid.UUID       `gorm:"type:uuid;index"`
	Quantity       int              `gorm:"not null"`
	Amount         decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time        `gorm:"index"`

	Product Product `gorm:"foreignKey:ProductID"`
}
