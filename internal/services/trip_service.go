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

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID string, request request_models.CreateTripRequest) (*db_models.Trip, error)
	ListTrips(ctx context.Context, userID string) ([]db_models.Trip, error)
	GetTrip(ctx context.Context, userID string, tripID string) (*db_models.Trip, error)
	UpdateTrip(ctx context.Context, userID string, tripID string, request request_models.UpdateTripRequest) error
	DeleteTrip(ctx context.Context, userID string, tripID string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

// CreateTrip requires name and both dates; the dates themselves are stored
// as supplied, an end before the start included.
func (t *TripService) CreateTrip(ctx context.Context, userID string, request request_models.CreateTripRequest) (*db_models.Trip, error) {
	if request.Name == "" || request.StartDate == "" || request.EndDate == "" {
		return nil, utils.ErrMissingFields
	}

	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	trip := &db_models.Trip{
		UserID:      owner,
		Name:        request.Name,
		Description: request.Description,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		CoverPhoto:  request.CoverPhoto,
	}
	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (t *TripService) ListTrips(ctx context.Context, userID string) ([]db_models.Trip, error) {
	trips, err := t.tripRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trips == nil {
		trips = []db_models.Trip{}
	}
	return trips, nil
}

func (t *TripService) GetTrip(ctx context.Context, userID string, tripID string) (*db_models.Trip, error) {
	trip, err := t.tripRepo.GetByID(ctx, userID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, userID string, tripID string, request request_models.UpdateTripRequest) error {
	rows, err := t.tripRepo.Update(ctx, userID, tripID, repositories.UpdateTripInput{
		Name:        request.Name,
		Description: request.Description,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		CoverPhoto:  request.CoverPhoto,
		IsPublic:    request.IsPublic,
	})
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrTripNotFound
	}
	return nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userID string, tripID string) error {
	err := t.tripRepo.DeleteCascade(ctx, userID, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}
