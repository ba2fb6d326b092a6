package model

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle tracks plates seen on the premises, linked to stays when known.
type Vehicle struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Plate       string    `gorm:"uniqueIndex;not null;type:varchar(16)"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IncidentReport records a security or damage incident, optionally tied to a
// vehicle and/or a room. Reports are append-only.
type IncidentReport struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehicleID   *uuid.UUID `gorm:"type:uuid;index"`
	RoomID      *uuid.UUID `gorm:"type:uuid;index"`
	Description string     `gorm:"not null"`
	ReportedBy  uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt   time.Time  `gorm:"index"`
}
