package db_models

// City is read-only catalog data, seeded once at first startup.
type City struct {
	BaseModel
	Name        string `json:"name"`
	Country     string `json:"country"`
	Region      string `json:"region"`
	CostIndex   int    `gorm:"default:5" json:"cost_index"`
	Popularity  int    `gorm:"default:0" json:"popularity"`
	Description string `json:"description"`
}
