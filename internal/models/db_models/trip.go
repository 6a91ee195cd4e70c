package db_models

import (
	"github.com/google/uuid"
)

// Trip dates are plain YYYY-MM-DD strings and are stored exactly as the
// client supplied them. There is no end >= start check on the server.
type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	CoverPhoto  string    `json:"cover_photo"`
	IsPublic    bool      `gorm:"default:false" json:"is_public"`

	Stops []Stop `gorm:"foreignKey:TripID" json:"-"`
}
