package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&db_models.User{},
		&db_models.Trip{},
		&db_models.Stop{},
		&db_models.Activity{},
		&db_models.City{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *db_models.User {
	t.Helper()
	user := &db_models.User{Name: "Test User", Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTrip(t *testing.T, db *gorm.DB, userID uuid.UUID) *db_models.Trip {
	t.Helper()
	trip := &db_models.Trip{
		UserID:    userID,
		Name:      "Trip",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-10",
	}
	require.NoError(t, db.Create(trip).Error)
	return trip
}

func seedStop(t *testing.T, db *gorm.DB, tripID uuid.UUID, order int) *db_models.Stop {
	t.Helper()
	stop := &db_models.Stop{
		TripID:    tripID,
		CityName:  "Paris",
		Country:   "France",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-03",
		StopOrder: order,
	}
	require.NoError(t, db.Create(stop).Error)
	return stop
}
