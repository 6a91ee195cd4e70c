package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type UpdateTripInput struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
	CoverPhoto  string
	IsPublic    bool
}

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByUser(ctx context.Context, userID string) ([]db_models.Trip, error)
	GetByID(ctx context.Context, userID string, tripID string) (*db_models.Trip, error)
	Update(ctx context.Context, userID string, tripID string, input UpdateTripInput) (int64, error)
	DeleteCascade(ctx context.Context, userID string, tripID string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) GetByID(ctx context.Context, userID string, tripID string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// Update is a full-field replace; the map form keeps zero values
// (is_public=false, empty description) from being skipped.
func (r *tripRepository) Update(ctx context.Context, userID string, tripID string, input UpdateTripInput) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ? AND user_id = ?", tripID, userID).
		Updates(map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"start_date":  input.StartDate,
			"end_date":    input.EndDate,
			"cover_photo": input.CoverPhoto,
			"is_public":   input.IsPublic,
		})
	return res.RowsAffected, res.Error
}

// DeleteCascade removes the trip with its stops and their activities in a
// single transaction, so a failure partway through leaves nothing
// half-deleted. Returns gorm.ErrRecordNotFound when id+owner matches no
// trip.
func (r *tripRepository) DeleteCascade(ctx context.Context, userID string, tripID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", tripID, userID).
			Delete(&db_models.Trip{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		subStopIDs := tx.Model(&db_models.Stop{}).
			Select("id").
			Where("trip_id = ?", tripID)

		if err := tx.Where("stop_id IN (?)", subStopIDs).
			Delete(&db_models.Activity{}).Error; err != nil {
			return err
		}

		return tx.Where("trip_id = ?", tripID).
			Delete(&db_models.Stop{}).Error
	})
}
