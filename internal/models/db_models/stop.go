package db_models

import (
	"github.com/google/uuid"
)

// Stop is one city visit inside a trip. StopOrder is caller-assigned and
// defines the itinerary display sequence; neither uniqueness nor
// contiguity is enforced.
type Stop struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;index" json:"trip_id"`
	CityName  string    `json:"city_name"`
	Country   string    `json:"country"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	StopOrder int       `json:"stop_order"`
	Notes     string    `json:"notes"`

	Activities []Activity `gorm:"foreignKey:StopID" json:"-"`
}
