package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Room statuses drive the dashboard board view.
// Status: "available" | "occupied" | "cleaning" | "maintenance"
type Room struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number int       `gorm:"uniqueIndex;not null"`
	// Type: "standard" | "suite" | "jacuzzi"
	Type      string `gorm:"type:varchar(20);not null;default:'standard'"`
	Status    string `gorm:"type:varchar(20);not null;default:'available';index"`
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occupancy is one stay in one room. The price is set once at checkout and
// never edited afterwards — corrections create a new occupancy, mirroring the
// immutable movement ledger of the cash shift.
// Status: "open" | "closed"
type Occupancy struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoomID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ShiftSessionID uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckIn        time.Time `gorm:"not null;index"`
	CheckOut       *time.Time
	// Price is charged at checkout via the tiered pricing table; a manual
	// override is allowed for negotiated rates.
	Price          *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PriceOverriden bool             `gorm:"not null;default:false"`
	VehiclePlate   *string          `gorm:"type:varchar(16)"`
	Status         string           `gorm:"type:varchar(10);not null;default:'open';index"`
	CreatedAt      time.Time

	Room Room `gorm:"foreignKey:RoomID"`
}
