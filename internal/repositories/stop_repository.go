package repositories

import (
	"context"

	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

// Every operation verifies the stop's trip belongs to the caller through
// the join; a guessed id owned by someone else behaves like a missing row.
type StopRepository interface {
	ListByTrip(ctx context.Context, userID string, tripID string) ([]db_models.Stop, error)
	Insert(ctx context.Context, userID string, stop *db_models.Stop) error
	DeleteCascade(ctx context.Context, userID string, stopID string) error
}

type stopRepository struct {
	db *gorm.DB
}

func NewStopRepository(db *gorm.DB) StopRepository {
	return &stopRepository{db: db}
}

func (r *stopRepository) ListByTrip(ctx context.Context, userID string, tripID string) ([]db_models.Stop, error) {
	var stops []db_models.Stop
	err := r.db.WithContext(ctx).
		Joins("JOIN trips ON trips.id = stops.trip_id").
		Where("trips.id = ? AND trips.user_id = ? AND trips.deleted_at IS NULL", tripID, userID).
		Order("stops.stop_order ASC").
		Find(&stops).Error
	if err != nil {
		return nil, err
	}
	return stops, nil
}

func (r *stopRepository) Insert(ctx context.Context, userID string, stop *db_models.Stop) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip db_models.Trip
		if err := tx.Where("id = ? AND user_id = ?", stop.TripID, userID).
			First(&trip).Error; err != nil {
			return err
		}
		return tx.Create(stop).Error
	})
}

// DeleteCascade removes the stop and its activities atomically.
func (r *stopRepository) DeleteCascade(ctx context.Context, userID string, stopID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stop db_models.Stop
		err := tx.Joins("JOIN trips ON trips.id = stops.trip_id").
			Where("stops.id = ? AND trips.user_id = ? AND trips.deleted_at IS NULL", stopID, userID).
			First(&stop).Error
		if err != nil {
			return err
		}

		if err := tx.Where("stop_id = ?", stop.ID).
			Delete(&db_models.Activity{}).Error; err != nil {
			return err
		}

		return tx.Delete(&stop).Error
	})
}
