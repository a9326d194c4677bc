package utils

import (
	"fmt"
	"log"

	"fitmate/internal/models"
	"fitmate/internal/norms"
	"fitmate/internal/scoring"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedStandards loads the built-in default threshold table into the
// configurable standards store. Existing rows for the same lookup key
// are left untouched, so re-running the seeder is safe.
func SeedStandards(db *gorm.DB) error {
	created := 0
	for _, row := range scoring.DefaultStandards() {
		standard := models.Standard{
			TestName:  row.TestName,
			Gender:    row.Gender,
			AgeMin:    row.AgeMin,
			AgeMax:    row.AgeMax,
			Variation: row.Variation,
			Cutoff2:   row.Cutoffs[0],
			Cutoff3:   row.Cutoffs[1],
			Cutoff4:   row.Cutoffs[2],
			Direction: string(row.Direction),
		}

		var count int64
		err := db.Model(&models.Standard{}).
			Where("test_name = ? AND gender = ? AND age_min = ? AND variation = ?",
				row.TestName, row.Gender, row.AgeMin, row.Variation).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check existing standard: %w", err)
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&standard).Error; err != nil {
			return fmt.Errorf("failed to seed standard: %w", err)
		}
		created++
	}

	log.Printf("Seeded %d standard rows", created)
	return nil
}

// SeedNormativeData loads the built-in population statistics.
func SeedNormativeData(db *gorm.DB) error {
	created := 0
	for _, row := range norms.DefaultNormativeRows() {
		datum := models.NormativeDatum{
			TestName: row.TestName,
			Gender:   row.Gender,
			AgeMin:   row.AgeMin,
			AgeMax:   row.AgeMax,
			Mean:     row.Mean,
			StdDev:   row.StdDev,
			Sample:   row.Sample,
		}

		var count int64
		err := db.Model(&models.NormativeDatum{}).
			Where("test_name = ? AND gender = ? AND age_min = ?",
				row.TestName, row.Gender, row.AgeMin).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check existing normative datum: %w", err)
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&datum).Error; err != nil {
			return fmt.Errorf("failed to seed normative datum: %w", err)
		}
		created++
	}

	log.Printf("Seeded %d normative rows", created)
	return nil
}

// SeedAdminUser creates the initial admin account when none exists.
func SeedAdminUser(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing admins: %w", err)
	}
	if count > 0 {
		log.Println("Admin account already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Printf("Created admin account %s", email)
	return nil
}
