package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

const citySearchLimit = 50

type CityRepository interface {
	Search(ctx context.Context, term string, country string) ([]db_models.City, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

// Search matches term as a case-insensitive substring of name or country,
// combined with an exact country filter when given; most popular first,
// at most 50 rows.
func (r *cityRepository) Search(ctx context.Context, term string, country string) ([]db_models.City, error) {
	query := r.db.WithContext(ctx).Model(&db_models.City{})

	if term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(country) LIKE ?", like, like)
	}
	if country != "" {
		query = query.Where("country = ?", country)
	}

	var cities []db_models.City
	err := query.Order("popularity DESC").Limit(citySearchLimit).Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}
