package main

import (
	"log"
	"net/http"

	"donorlink/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"donorlink/internal/auth"
	"donorlink/internal/cache"
	"donorlink/internal/config"
	"donorlink/internal/db"
	"donorlink/internal/geocode"
	"donorlink/internal/handler"
	"donorlink/internal/model"
	"donorlink/internal/repository"
	"donorlink/internal/router"
	"donorlink/internal/service"
)

// @title DonorLink API
// @version 1.0
// @description Donation-matching REST API with JWT authentication and address geocoding.
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Donation{},
		&model.ActivityLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	donationRepo := repository.NewDonationRepository(gormDB)
	activityRepo := repository.NewActivityLogRepository(gormDB)

	// Initialize collaborators
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTLSeconds)
	geocodeStore := geocode.NewStore(cacheClient)
	geocoder := geocode.NewClient(cfg.GeocodeAPIKey, geocodeStore)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, donationRepo, geocoder, cacheClient)
	donationService := service.NewDonationService(donationRepo, activityRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	donationHandler := handler.NewDonationHandler(donationService)

	// Register routes
	router.Register(e, cfg, authHandler, userHandler, donationHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
