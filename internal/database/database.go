package database

import (
	"log"

	"cens-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Supabase Postgres database. An empty DSN is not fatal:
// the server still starts and submission endpoints answer with a
// configuration error instead.
func Connect(dsn string) *gorm.DB {
	if dsn == "" {
		log.Println("DATABASE_URL not set, submissions will be rejected")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if db == nil {
		return
	}

	err := db.AutoMigrate(
		&models.CompetitionSubmission{},
		&models.EssaySubmission{},
		&models.ProposalSubmission{},
		&models.EventSubmission{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}
