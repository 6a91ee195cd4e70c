package services

import (
	"context"

	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

// Per-stop estimate constants used alongside the real activity-cost sum.
const (
	accommodationPerStop = 100
	transportPerStop     = 50
	mealsPerStop         = 75
)

type BudgetServiceInterface interface {
	GetTripBudget(ctx context.Context, userID string, tripID string) (*response_models.BudgetResponse, error)
}

type BudgetService struct {
	budgetRepo repositories.BudgetRepository
}

func NewBudgetService(budgetRepo repositories.BudgetRepository) BudgetServiceInterface {
	return &BudgetService{budgetRepo: budgetRepo}
}

// GetTripBudget recomputes the breakdown from current store state on every
// call; nothing is cached or persisted. A trip with zero stops yields an
// all-zero budget.
func (b *BudgetService) GetTripBudget(ctx context.Context, userID string, tripID string) (*response_models.BudgetResponse, error) {
	totals, err := b.budgetRepo.TripTotals(ctx, userID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if totals == nil {
		return nil, utils.ErrTripNotFound
	}

	stops := float64(totals.TotalStops)
	accommodation := stops * accommodationPerStop
	transport := stops * transportPerStop
	meals := stops * mealsPerStop

	return &response_models.BudgetResponse{
		Activities:    totals.TotalActivities,
		Accommodation: accommodation,
		Transport:     transport,
		Meals:         meals,
		Total:         totals.TotalActivities + accommodation + transport + meals,
	}, nil
}
