package services

import (
	"context"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type CityServiceInterface interface {
	SearchCities(ctx context.Context, term string, country string) ([]db_models.City, error)
}

type CityService struct {
	cityRepo repositories.CityRepository
}

func NewCityService(cityRepo repositories.CityRepository) CityServiceInterface {
	return &CityService{cityRepo: cityRepo}
}

func (c *CityService) SearchCities(ctx context.Context, term string, country string) ([]db_models.City, error) {
	cities, err := c.cityRepo.Search(ctx, term, country)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if cities == nil {
		cities = []db_models.City{}
	}
	return cities, nil
}
