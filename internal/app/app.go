package app

import (
	"context"
	"fmt"

	"imovia-backend/internal/auth"
	"imovia-backend/internal/config"
	"imovia-backend/internal/health"
	"imovia-backend/internal/listings"
	"imovia-backend/internal/middleware"
	"imovia-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// CreateApp builds the Fiber app: storage backend, the two stores (owned
// here, constructed once, passed by reference to handlers) and all routes.
func CreateApp(cfg *config.Config) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	sessions, err := auth.NewStore(ctx, store)
	if err != nil {
		return nil, err
	}
	listingStore, err := listings.NewStore(ctx, store, cfg.SeedListings)
	if err != nil {
		return nil, err
	}

	healthHandlers := &health.Handlers{Storage: store}
	app.Get("/health", healthHandlers.JSON)

	authHandlers := &auth.Handlers{Sessions: sessions}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Post("/register", authHandlers.Register)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	listingHandlers := &listings.Handlers{Store: listingStore}
	listingGroup := app.Group("/api/v1/listings")
	listingGroup.Get("/get-all-listings", listingHandlers.GetAllListings)
	listingGroup.Get("/get-cities", listingHandlers.GetCities)
	listingGroup.Get("/get-listing/:listing_id", listingHandlers.GetListingByID)
	listingGroup.Get("/get-my-listings", middleware.RequireAuth(sessions), listingHandlers.GetMyListings)
	listingGroup.Post("/create-listing", middleware.RequireAuth(sessions), listingHandlers.CreateListing)
	listingGroup.Put("/edit-listing/:listing_id", middleware.RequireAuth(sessions), listingHandlers.EditListing)
	listingGroup.Delete("/delete-listing/:listing_id", middleware.RequireAuth(sessions), listingHandlers.DeleteListing)

	return app, nil
}

func newStorage(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "sqlite", "":
		db, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)
	case "postgres":
		db, err := storage.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)
	case "redis":
		return storage.NewRedisStore(cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
