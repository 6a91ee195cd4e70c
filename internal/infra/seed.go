package infra

import (
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

var defaultCities = []db_models.City{
	{Name: "Paris", Country: "France", Region: "Europe", CostIndex: 8, Popularity: 95, Description: "City of Light and Romance"},
	{Name: "Tokyo", Country: "Japan", Region: "Asia", CostIndex: 9, Popularity: 90, Description: "Modern metropolis with ancient traditions"},
	{Name: "New York", Country: "USA", Region: "North America", CostIndex: 9, Popularity: 88, Description: "The city that never sleeps"},
	{Name: "London", Country: "UK", Region: "Europe", CostIndex: 9, Popularity: 92, Description: "Historic capital with royal heritage"},
	{Name: "Barcelona", Country: "Spain", Region: "Europe", CostIndex: 7, Popularity: 85, Description: "Mediterranean beauty with Gaudi architecture"},
	{Name: "Rome", Country: "Italy", Region: "Europe", CostIndex: 7, Popularity: 89, Description: "Eternal city of history and culture"},
	{Name: "Dubai", Country: "UAE", Region: "Middle East", CostIndex: 8, Popularity: 80, Description: "Modern oasis of luxury"},
	{Name: "Bali", Country: "Indonesia", Region: "Asia", CostIndex: 5, Popularity: 87, Description: "Tropical paradise"},
	{Name: "Iceland", Country: "Iceland", Region: "Europe", CostIndex: 9, Popularity: 75, Description: "Land of fire and ice"},
	{Name: "Sydney", Country: "Australia", Region: "Oceania", CostIndex: 8, Popularity: 82, Description: "Harbor city with iconic landmarks"},
}

// SeedCities inserts the catalog exactly once: a non-empty table means a
// previous start already seeded it and the call is a no-op.
func SeedCities(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.City{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cities := make([]db_models.City, len(defaultCities))
	copy(cities, defaultCities)
	return db.Create(&cities).Error
}
