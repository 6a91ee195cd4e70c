package db_models

import (
	"strings"

	"github.com/google/uuid"
)

const (
	CategorySightseeing = "sightseeing"
	CategoryFood        = "food"
	CategoryAdventure   = "adventure"
	CategoryCulture     = "culture"
	CategoryShopping    = "shopping"
	CategoryOther       = "other"
)

type Activity struct {
	BaseModel
	StopID      uuid.UUID `gorm:"type:uuid;index" json:"stop_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	// Category is one of the Category* constants. When the client sends a
	// label outside that set it is stored as CategoryOther and the original
	// text is kept in CategoryLabel.
	Category      string  `json:"category"`
	CategoryLabel string  `json:"category_label,omitempty"`
	Cost          float64 `gorm:"default:0" json:"cost"`
	Duration      *int    `json:"duration"`
	ActivityDate  *string `json:"activity_date"`
}

// NormalizeCategory maps free-text input onto the closed category set.
// The second return value is the original label when the input did not
// match a known category, empty otherwise.
func NormalizeCategory(raw string) (string, string) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case CategorySightseeing:
		return CategorySightseeing, ""
	case CategoryFood:
		return CategoryFood, ""
	case CategoryAdventure:
		return CategoryAdventure, ""
	case CategoryCulture:
		return CategoryCulture, ""
	case CategoryShopping:
		return CategoryShopping, ""
	case CategoryOther, "":
		return CategoryOther, ""
	default:
		return CategoryOther, strings.TrimSpace(raw)
	}
}
