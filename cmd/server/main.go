package main

import (
	"log"
	"net/http"
	"os"

	_ "dinnerclub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dinnerclub/internal/auth"
	"dinnerclub/internal/cache"
	"dinnerclub/internal/config"
	"dinnerclub/internal/db"
	"dinnerclub/internal/handler"
	"dinnerclub/internal/model"
	"dinnerclub/internal/repository"
	"dinnerclub/internal/router"
	"dinnerclub/internal/service"
)

// @title Dinner Club API
// @version 1.0
// @description Dinner club coordination API: clubs, events, RSVPs, date polls and wishlists with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.DatePollVote{},
			&model.DatePollOption{},
			&model.DatePoll{},
			&model.RSVP{},
			&model.Event{},
			&model.WishlistRestaurant{},
			&model.Membership{},
			&model.Club{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Club{},
		&model.Membership{},
		&model.Event{},
		&model.RSVP{},
		&model.DatePoll{},
		&model.DatePollOption{},
		&model.DatePollVote{},
		&model.WishlistRestaurant{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	clubRepo := repository.NewClubRepository(gormDB)
	membershipRepo := repository.NewMembershipRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	rsvpRepo := repository.NewRSVPRepository(gormDB)
	pollRepo := repository.NewDatePollRepository(gormDB)
	wishlistRepo := repository.NewWishlistRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cacheClient)
	clubService := service.NewClubService(clubRepo, membershipRepo)
	eventService := service.NewEventService(eventRepo, membershipRepo)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo, membershipRepo)
	pollService := service.NewDatePollService(pollRepo, membershipRepo)
	wishlistService := service.NewWishlistService(wishlistRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	clubHandler := handler.NewClubHandler(clubService)
	eventHandler := handler.NewEventHandler(eventService)
	rsvpHandler := handler.NewRSVPHandler(rsvpService)
	pollHandler := handler.NewDatePollHandler(pollService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)

	// Register routes
	router.Register(
		e,
		jwtService,
		tokenStore,
		authHandler,
		clubHandler,
		eventHandler,
		rsvpHandler,
		pollHandler,
		wishlistHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
