package infra

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"globetrotter/internal/config"
	"globetrotter/internal/models/db_models"
)

func InitSQLite(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		log.Printf("Error enabling foreign keys: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Trip{},
		&db_models.Stop{},
		&db_models.Activity{},
		&db_models.City{},
	); err != nil {
		log.Printf("Error migrating database: %v", err)
		log.Fatal("Error migrating database")
	}

	if err := SeedCities(db); err != nil {
		log.Printf("Error seeding cities: %v", err)
	}

	return db
}

func CloseSQLite(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("SQLite database connection closed successfully")
	}
}
