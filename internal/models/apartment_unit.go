package models

import (
	"time"

	"github.com/google/uuid"
)

// ApartmentUnit is a residential unit tracked separately from commercial
// building units.
type ApartmentUnit struct {
	ID              uuid.UUID `json:"id"`
	BuildingID      uuid.UUID `json:"building_id"`
	ApartmentNumber string    `json:"apartment_number"`
	Bedrooms        int       `json:"bedrooms"`
	Rent            int       `json:"rent"`
	CreatedAt       time.Time `json:"created_at"`
}
