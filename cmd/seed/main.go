package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"donorlink/internal/config"
	"donorlink/internal/db"
	"donorlink/internal/model"
	"donorlink/internal/repository"
)

const bcryptCost = 10

// seedUsers are created with fixed coordinates so seeding works without a
// geocode API key.
var seedUsers = []model.User{
	{
		Role:         model.RoleAdmin,
		Organization: "DonorLink",
		FirstName:    "Site",
		LastName:     "Admin",
		Email:        "admin@donorlink.local",
		Address:      "1 Main St",
		City:         "Springfield",
		State:        "IL",
		Zip:          62701,
		Lat:          39.7990,
		Lng:          -89.6440,
	},
	{
		Role:         model.RoleDonor,
		Organization: "Individual Donor",
		FirstName:    "Dana",
		LastName:     "Fields",
		Email:        "dana@example.com",
		Address:      "200 Oak Ave",
		City:         "Springfield",
		State:        "IL",
		Zip:          62702,
		Lat:          39.8210,
		Lng:          -89.6530,
		DonationType: "furniture",
	},
	{
		Role:         model.RoleRecipient,
		Organization: "Springfield Shelter",
		FirstName:    "Sam",
		LastName:     "Porter",
		Email:        "shelter@example.com",
		Address:      "55 Elm St",
		City:         "Springfield",
		State:        "IL",
		Zip:          62703,
		Lat:          39.7780,
		Lng:          -89.6500,
	},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Donation{}, &model.ActivityLog{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "changeme"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	donationRepo := repository.NewDonationRepository(gormDB)

	created := 0
	var donor *model.User
	for i := range seedUsers {
		u := seedUsers[i]
		existing, err := userRepo.FindByEmail(ctx, u.Email)
		if err == nil {
			log.Printf("Skipping %s (already exists)", u.Email)
			if existing.Role == model.RoleDonor {
				donor = existing
			}
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check %s: %v", u.Email, err)
		}

		u.Password = string(hashed)
		if err := userRepo.Create(ctx, &u); err != nil {
			log.Fatalf("Failed to create %s: %v", u.Email, err)
		}
		created++
		if u.Role == model.RoleDonor {
			donor = &u
		}
	}
	log.Printf("Created %d users", created)

	if donor != nil {
		pickup := time.Now().Add(72 * time.Hour)
		donation := model.Donation{
			Category:      "furniture",
			Details:       "Gently used sofa and two chairs",
			Amount:        3,
			PickupDate:    &pickup,
			PickupAddress: "200 Oak Ave, Springfield, IL, 62702",
			Donor:         donor.ID,
			Recipient:     model.UnassignedRecipient,
		}
		if err := donationRepo.Create(ctx, &donation); err != nil {
			log.Fatalf("Failed to create demo donation: %v", err)
		}
		log.Printf("Created demo donation %d for donor %d", donation.ID, donor.ID)
	}

	log.Println("Seed complete")
}
