package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type StopServiceInterface interface {
	ListStops(ctx context.Context, userID string, tripID string) ([]db_models.Stop, error)
	AddStop(ctx context.Context, userID string, tripID string, request request_models.AddStopRequest) (*db_models.Stop, error)
	DeleteStop(ctx context.Context, userID string, stopID string) error
}

type StopService struct {
	stopRepo repositories.StopRepository
}

func NewStopService(stopRepo repositories.StopRepository) StopServiceInterface {
	return &StopService{stopRepo: stopRepo}
}

func (s *StopService) ListStops(ctx context.Context, userID string, tripID string) ([]db_models.Stop, error) {
	stops, err := s.stopRepo.ListByTrip(ctx, userID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stops == nil {
		stops = []db_models.Stop{}
	}
	return stops, nil
}

func (s *StopService) AddStop(ctx context.Context, userID string, tripID string, request request_models.AddStopRequest) (*db_models.Stop, error) {
	if request.CityName == "" || request.Country == "" {
		return nil, utils.ErrMissingFields
	}

	trip, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	stop := &db_models.Stop{
		TripID:    trip,
		CityName:  request.CityName,
		Country:   request.Country,
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
		StopOrder: request.StopOrder,
		Notes:     request.Notes,
	}
	if err := s.stopRepo.Insert(ctx, userID, stop); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return stop, nil
}

func (s *StopService) DeleteStop(ctx context.Context, userID string, stopID string) error {
	err := s.stopRepo.DeleteCascade(ctx, userID, stopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrStopNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}
