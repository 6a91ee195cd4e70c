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

type ActivityServiceInterface interface {
	ListActivities(ctx context.Context, userID string, stopID string) ([]db_models.Activity, error)
	AddActivity(ctx context.Context, userID string, stopID string, request request_models.AddActivityRequest) (*db_models.Activity, error)
	DeleteActivity(ctx context.Context, userID string, activityID string) error
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
}

func NewActivityService(activityRepo repositories.ActivityRepository) ActivityServiceInterface {
	return &ActivityService{activityRepo: activityRepo}
}

func (a *ActivityService) ListActivities(ctx context.Context, userID string, stopID string) ([]db_models.Activity, error) {
	activities, err := a.activityRepo.ListByStop(ctx, userID, stopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrStopNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	if activities == nil {
		activities = []db_models.Activity{}
	}
	return activities, nil
}

func (a *ActivityService) AddActivity(ctx context.Context, userID string, stopID string, request request_models.AddActivityRequest) (*db_models.Activity, error) {
	if request.Name == "" {
		return nil, utils.ErrMissingFields
	}

	stop, err := uuid.Parse(stopID)
	if err != nil {
		return nil, utils.ErrStopNotFound
	}

	category, label := db_models.NormalizeCategory(request.Category)

	activity := &db_models.Activity{
		StopID:        stop,
		Name:          request.Name,
		Description:   request.Description,
		Category:      category,
		CategoryLabel: label,
		Cost:          utils.ParseAmount(request.Cost),
		Duration:      request.Duration,
		ActivityDate:  request.ActivityDate,
	}
	if err := a.activityRepo.Insert(ctx, userID, activity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrStopNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return activity, nil
}

func (a *ActivityService) DeleteActivity(ctx context.Context, userID string, activityID string) error {
	err := a.activityRepo.Delete(ctx, userID, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrActivityNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}
