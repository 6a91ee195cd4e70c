package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type TripTotalsRow struct {
	TotalActivities float64 `gorm:"column:total_activities"`
	TotalStops      int64   `gorm:"column:total_stops"`
}

type BudgetRepository interface {
	// TripTotals returns nil when the trip does not belong to userID.
	// A trip with no stops yields a zero row, not an error.
	TripTotals(ctx context.Context, userID string, tripID string) (*TripTotalsRow, error)
}

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) TripTotals(ctx context.Context, userID string, tripID string) (*TripTotalsRow, error) {
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

	var row TripTotalsRow
	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(a.cost), 0) AS total_activities,
		       COUNT(DISTINCT s.id)     AS total_stops
		FROM trips t
		LEFT JOIN stops s      ON s.trip_id = t.id AND s.deleted_at IS NULL
		LEFT JOIN activities a ON a.stop_id = s.id AND a.deleted_at IS NULL
		WHERE t.id = ? AND t.user_id = ? AND t.deleted_at IS NULL`,
		tripID, userID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &row, nil
}
