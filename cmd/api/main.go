package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"kejaspace/internal/config"
	"kejaspace/internal/database"
	"kejaspace/internal/middleware"
	"kejaspace/internal/modules/auth"
	"kejaspace/internal/modules/booking"
	"kejaspace/internal/modules/catalog"
	"kejaspace/internal/modules/messaging"
	"kejaspace/internal/modules/review"
	jwtsvc "kejaspace/internal/pkg/jwt"
	"kejaspace/internal/repository"
)

func main() {
	cfg := config.Load()

	var store repository.Storage
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		dbStore := repository.NewDatabaseStorage(db)
		if err := dbStore.AutoMigrate(); err != nil {
			log.Fatal(err)
		}
		store = dbStore
	} else {
		store = repository.NewMemStorage()
	}

	// Nil when JWT_SECRET is unset; the auth middleware answers 503
	// on protected routes in that state.
	var j *jwtsvc.Service
	if cfg.JWTSecret != "" {
		j = jwtsvc.New(cfg.JWTSecret, 24*time.Hour)
	}

	hub := messaging.NewHub()
	defer hub.Close()

	// Assigning j directly would hide the nil behind the interface.
	var issuer auth.TokenIssuer
	if j != nil {
		issuer = j
	}
	authService := auth.NewService(store, issuer)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(store)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(store)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(store)
	reviewHandler := review.NewHandler(reviewService)

	messagingService := messaging.NewService(store, hub)
	messagingHandler := messaging.NewHandler(messagingService, hub)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		catalogHandler.RegisterRoutes(api)
		reviewHandler.RegisterRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtected(protected)
			catalogHandler.RegisterProtected(protected)
			bookingHandler.RegisterProtected(protected)
			reviewHandler.RegisterProtected(protected)
			messagingHandler.RegisterProtected(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
