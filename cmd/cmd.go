package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-recommendation-backend/internal/config"
	"travel-recommendation-backend/internal/handlers"
	"travel-recommendation-backend/internal/middleware"
	"travel-recommendation-backend/internal/repository"
	"travel-recommendation-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Connect to database
	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connection established")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	destRepo := repository.NewDestinationRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	socialRepo := repository.NewSocialRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	destService := services.NewDestinationService(destRepo, restaurantRepo)
	reviewService := services.NewReviewService(reviewRepo)
	wishlistService := services.NewWishlistService(wishlistRepo)
	socialService := services.NewSocialService(socialRepo, userRepo)
	groupService := services.NewGroupService(groupRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	destHandler := handlers.NewDestinationHandler(destService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	socialHandler := handlers.NewSocialHandler(socialService)
	groupHandler := handlers.NewGroupHandler(groupService)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/health", healthHandler.Health)
		r.Get("/test", healthHandler.TestDB)
		r.Get("/destinations", destHandler.Search)
		r.Get("/preferences", destHandler.Facets)
		r.Get("/nearby/{destinationId}", destHandler.Nearby)
		r.Get("/restaurants/{destinationId}", destHandler.Restaurants)
		r.Get("/reviews/{destinationId}", reviewHandler.ListByDestination)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// The member-add route shipped without auth; keep that explicit
		// and configurable instead of accidental.
		if cfg.Auth.OpenGroupMemberAdd {
			r.Post("/groups/{groupId}/members", groupHandler.AddMember)
		}

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(authService))
			r.Post("/wishlist", wishlistHandler.Add)
			r.Get("/wishlist/{userId}", wishlistHandler.List)
			r.Post("/reviews", reviewHandler.Add)
			r.Get("/friends/{userId}", socialHandler.Friends)
			r.Post("/friends", socialHandler.AddFriend)
			r.Get("/groups/{userId}", groupHandler.ListByUser)
			r.Post("/groups", groupHandler.Create)
			if !cfg.Auth.OpenGroupMemberAdd {
				r.Post("/groups/{groupId}/members", groupHandler.AddMember)
			}
		})
	})

	// Static assets: the frontend bundle and pre-processed destination
	// images live in local directories.
	if cfg.Assets.ImagesDir != "" {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.Assets.ImagesDir))))
	}
	if cfg.Assets.PublicDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.Assets.PublicDir)))
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
