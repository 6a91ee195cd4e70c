package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type TripRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TripRepository
}

func (s *TripRepositoryTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.repo = NewTripRepository(s.db)
}

func TestTripRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TripRepositoryTestSuite))
}

func (s *TripRepositoryTestSuite) TestListByUserNewestFirst() {
	ctx := context.Background()
	user := createTestUser(s.T(), s.db, "a@example.com")

	older := createTestTrip(s.T(), s.db, user.ID, "Older")
	newer := createTestTrip(s.T(), s.db, user.ID, "Newer")

	// The create hook stamps both rows in the same second; spread them out.
	require.NoError(s.T(), s.db.Model(&db_models.Trip{}).
		Where("id = ?", older.ID).Update("created_at", 1000).Error)
	require.NoError(s.T(), s.db.Model(&db_models.Trip{}).
		Where("id = ?", newer.ID).Update("created_at", 2000).Error)

	trips, err := s.repo.ListByUser(ctx, user.ID.String())
	require.NoError(s.T(), err)
	require.Len(s.T(), trips, 2)
	assert.Equal(s.T(), "Newer", trips[0].Name)
	assert.Equal(s.T(), "Older", trips[1].Name)
}

func (s *TripRepositoryTestSuite) TestListNeverLeaksAcrossOwners() {
	ctx := context.Background()
	alice := createTestUser(s.T(), s.db, "alice@example.com")
	bob := createTestUser(s.T(), s.db, "bob@example.com")

	createTestTrip(s.T(), s.db, alice.ID, "Alice trip")
	bobTrip := createTestTrip(s.T(), s.db, bob.ID, "Bob trip")

	trips, err := s.repo.ListByUser(ctx, alice.ID.String())
	require.NoError(s.T(), err)
	require.Len(s.T(), trips, 1)
	assert.Equal(s.T(), "Alice trip", trips[0].Name)

	// Guessing Bob's trip id does not help either.
	trip, err := s.repo.GetByID(ctx, alice.ID.String(), bobTrip.ID.String())
	require.NoError(s.T(), err)
	assert.Nil(s.T(), trip)
}

func (s *TripRepositoryTestSuite) TestEndDateBeforeStartDateIsStoredAsSupplied() {
	ctx := context.Background()
	user := createTestUser(s.T(), s.db, "a@example.com")

	trip := &db_models.Trip{
		UserID:    user.ID,
		Name:      "Backwards",
		StartDate: "2026-06-10",
		EndDate:   "2026-06-01",
	}
	require.NoError(s.T(), s.repo.Insert(ctx, trip))

	got, err := s.repo.GetByID(ctx, user.ID.String(), trip.ID.String())
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), "2026-06-10", got.StartDate)
	assert.Equal(s.T(), "2026-06-01", got.EndDate)
}

func (s *TripRepositoryTestSuite) TestUpdateReplacesAllFields() {
	ctx := context.Background()
	user := createTestUser(s.T(), s.db, "a@example.com")
	trip := createTestTrip(s.T(), s.db, user.ID, "Before")

	rows, err := s.repo.Update(ctx, user.ID.String(), trip.ID.String(), UpdateTripInput{
		Name:      "After",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-05",
		IsPublic:  true,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), rows)

	got, err := s.repo.GetByID(ctx, user.ID.String(), trip.ID.String())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "After", got.Name)
	assert.Equal(s.T(), "", got.Description)
	assert.True(s.T(), got.IsPublic)

	// The replace goes both ways: is_public can be cleared again.
	rows, err = s.repo.Update(ctx, user.ID.String(), trip.ID.String(), UpdateTripInput{
		Name:      "After",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-05",
		IsPublic:  false,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), rows)

	got, err = s.repo.GetByID(ctx, user.ID.String(), trip.ID.String())
	require.NoError(s.T(), err)
	assert.False(s.T(), got.IsPublic)
}

func (s *TripRepositoryTestSuite) TestUpdateUnknownTripMatchesZeroRows() {
	ctx := context.Background()
	user := createTestUser(s.T(), s.db, "a@example.com")

	rows, err := s.repo.Update(ctx, user.ID.String(), "no-such-id", UpdateTripInput{Name: "x"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), rows)
}

func (s *TripRepositoryTestSuite) TestDeleteCascadeRemovesStopsAndActivities() {
	ctx := context.Background()
	user := createTestUser(s.T(), s.db, "a@example.com")
	trip := createTestTrip(s.T(), s.db, user.ID, "Doomed")
	stop1 := createTestStop(s.T(), s.db, trip.ID, "Paris", 1)
	stop2 := createTestStop(s.T(), s.db, trip.ID, "Rome", 2)
	createTestActivity(s.T(), s.db, stop1.ID, "Louvre", 25)
	createTestActivity(s.T(), s.db, stop2.ID, "Colosseum", 18)

	// An unrelated trip must survive untouched.
	other := createTestTrip(s.T(), s.db, user.ID, "Survivor")
	otherStop := createTestStop(s.T(), s.db, other.ID, "Tokyo", 1)
	createTestActivity(s.T(), s.db, otherStop.ID, "Skytree", 20)

	require.NoError(s.T(), s.repo.DeleteCascade(ctx, user.ID.String(), trip.ID.String()))

	var stopCount, activityCount int64
	require.NoError(s.T(), s.db.Model(&db_models.Stop{}).Count(&stopCount).Error)
	require.NoError(s.T(), s.db.Model(&db_models.Activity{}).Count(&activityCount).Error)
	assert.Equal(s.T(), int64(1), stopCount)
	assert.Equal(s.T(), int64(1), activityCount)

	got, err := s.repo.GetByID(ctx, user.ID.String(), trip.ID.String())
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *TripRepositoryTestSuite) TestDeleteUnknownTripReturnsNotFound() {
	ctx := context.Background()
	user := createTestUser(s.T(), s.db, "a@example.com")

	err := s.repo.DeleteCascade(ctx, user.ID.String(), "no-such-id")
	assert.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)
}

func (s *TripRepositoryTestSuite) TestDeleteSomeoneElsesTripReturnsNotFound() {
	ctx := context.Background()
	alice := createTestUser(s.T(), s.db, "alice@example.com")
	bob := createTestUser(s.T(), s.db, "bob@example.com")
	bobTrip := createTestTrip(s.T(), s.db, bob.ID, "Bob trip")

	err := s.repo.DeleteCascade(ctx, alice.ID.String(), bobTrip.ID.String())
	assert.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)

	// Bob's trip is still there.
	got, err := s.repo.GetByID(ctx, bob.ID.String(), bobTrip.ID.String())
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), got)
}
