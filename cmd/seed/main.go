package main

import (
	"flag"
	"log"
	"os"

	"fitmate/database"
	"fitmate/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	adminEmail := flag.String("admin-email", "admin@fitmate.local", "Initial admin account email")
	adminPassword := flag.String("admin-password", "", "Initial admin account password")
	skipAdmin := flag.Bool("skip-admin", false, "Skip creating the admin account")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := utils.SeedStandards(database.DB); err != nil {
		log.Fatalf("Failed to seed standards: %v", err)
	}
	if err := utils.SeedNormativeData(database.DB); err != nil {
		log.Fatalf("Failed to seed normative data: %v", err)
	}

	if !*skipAdmin {
		password := *adminPassword
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}
		if password == "" {
			log.Fatal("Admin password required: pass -admin-password or set ADMIN_PASSWORD")
		}
		if err := utils.SeedAdminUser(database.DB, *adminEmail, password); err != nil {
			log.Fatalf("Failed to seed admin account: %v", err)
		}
	}

	log.Println("Seeding completed successfully")
}
