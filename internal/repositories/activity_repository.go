package repositories

import (
	"context"

	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

// Ownership is checked through stop -> trip -> user on every path.
type ActivityRepository interface {
	ListByStop(ctx context.Context, userID string, stopID string) ([]db_models.Activity, error)
	Insert(ctx context.Context, userID string, activity *db_models.Activity) error
	Delete(ctx context.Context, userID string, activityID string) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// ListByStop orders by activity_date ascending; SQLite sorts NULL before
// any value, so undated activities come first.
func (r *activityRepository) ListByStop(ctx context.Context, userID string, stopID string) ([]db_models.Activity, error) {
	if err := r.checkStopOwnership(ctx, r.db, userID, stopID); err != nil {
		return nil, err
	}

	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("stop_id = ?", stopID).
		Order("activity_date ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Insert(ctx context.Context, userID string, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkStopOwnership(ctx, tx, userID, activity.StopID.String()); err != nil {
			return err
		}
		return tx.Create(activity).Error
	})
}

func (r *activityRepository) Delete(ctx context.Context, userID string, activityID string) error {
	subStopIDs := r.db.Model(&db_models.Stop{}).
		Select("stops.id").
		Joins("JOIN trips ON trips.id = stops.trip_id").
		Where("trips.user_id = ? AND trips.deleted_at IS NULL", userID)

	res := r.db.WithContext(ctx).
		Where("id = ? AND stop_id IN (?)", activityID, subStopIDs).
		Delete(&db_models.Activity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *activityRepository) checkStopOwnership(ctx context.Context, tx *gorm.DB, userID string, stopID string) error {
	var stop db_models.Stop
	return tx.WithContext(ctx).
		Joins("JOIN trips ON trips.id = stops.trip_id").
		Where("stops.id = ? AND trips.user_id = ? AND trips.deleted_at IS NULL", stopID, userID).
		First(&stop).Error
}
