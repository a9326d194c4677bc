package database

import (
	"fitmate/internal/models"
	"log"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Assessment{},
		&models.Standard{},
		&models.NormativeDatum{},
		&models.RecalcJob{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
