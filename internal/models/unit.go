package models

import (
	"time"

	"github.com/google/uuid"
)

// Unit is a rentable space inside a managed building.
type Unit struct {
	ID         uuid.UUID `json:"id"`
	BuildingID uuid.UUID `json:"building_id"`
	UnitNumber string    `json:"unit_number"`
	Rent       int       `json:"rent"`
	CreatedAt  time.Time `json:"created_at"`
}
