package main

import (
	"log"
	"os"
	"time"

	"legalbridge-be/internal/model"
	"legalbridge-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds demo accounts for local development: one lawyer and one client,
// both verified and active, password "password123".
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo accounts...")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password:", err)
	}
	passwordHash := string(hash)
	now := time.Now()

	seeds := []struct {
		user    model.User
		profile model.Profile
	}{
		{
			user: model.User{
				Email:           "priya.sharma@legalbridge.dev",
				PasswordHash:    &passwordHash,
				FullName:        "Priya Sharma",
				UserType:        "lawyer",
				Status:          "active",
				EmailVerified:   true,
				EmailVerifiedAt: &now,
			},
			profile: model.Profile{
				FullName:   "Priya Sharma",
				Phone:      "+91 98765 43210",
				Bio:        "Contract law specialist with a decade of corporate experience.",
				UserType:   "lawyer",
				Specialty:  "Contract Law",
				Experience: 10,
				HourlyRate: 2500,
				Location:   "Mumbai",
			},
		},
		{
			user: model.User{
				Email:           "arjun.mehta@legalbridge.dev",
				PasswordHash:    &passwordHash,
				FullName:        "Arjun Mehta",
				UserType:        "client",
				Status:          "active",
				EmailVerified:   true,
				EmailVerifiedAt: &now,
			},
			profile: model.Profile{
				FullName: "Arjun Mehta",
				Phone:    "+91 91234 56789",
				Bio:      "Client seeking legal assistance",
				UserType: "client",
				Location: "Bengaluru",
			},
		},
	}

	for _, seed := range seeds {
		var existing model.User
		if err := db.Where("email = ?", seed.user.Email).First(&existing).Error; err == nil {
			color.Yellow("User %s already exists, skipping", seed.user.Email)
			continue
		}

		if err := db.Create(&seed.user).Error; err != nil {
			log.Fatal("Error: Failed to create user:", err)
		}

		seed.profile.UserId = seed.user.Id
		if err := db.Create(&seed.profile).Error; err != nil {
			log.Fatal("Error: Failed to create profile:", err)
		}

		color.Green("Seeded %s (%s)", seed.user.Email, seed.user.UserType)
	}

	color.Cyan("Done")
}
