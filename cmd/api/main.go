package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/kittipatv/pet-storefront-backend/internal/cart"
	"github.com/kittipatv/pet-storefront-backend/internal/config"
	"github.com/kittipatv/pet-storefront-backend/internal/middleware"
	"github.com/kittipatv/pet-storefront-backend/internal/pet"
	"github.com/kittipatv/pet-storefront-backend/internal/petapi"
	"github.com/kittipatv/pet-storefront-backend/internal/shopper"
)

// main starts the server with in-memory storage, no database required. Meant
// for local development against the mobile client.
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		// local runs only; the postgres binary refuses to start without one
		cfg.JWTSecret = "local-dev-secret"
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())

	apiClient := petapi.NewClient(petapi.Options{
		BaseURL:      cfg.SubmitBaseURL,
		Token:        cfg.SubmitToken,
		ImageURL:     cfg.ImageURL,
		ImageTimeout: cfg.ImageTimeout,
	})
	petService := pet.NewService(pet.NewInMemoryRepository(pet.SeedPets()), apiClient)
	petHandler := pet.NewHandler(petService)

	shopperService := shopper.NewService(shopper.NewInMemoryRepository(nil))
	shopperHandler := shopper.NewHandler(shopperService, cfg.JWTSecret)

	shopperHandler.RegisterPublicRoutes(app)
	petHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	petHandler.RegisterProtectedRoutes(app)
	cart.NewHandler(cart.NewSessions(), petService).RegisterProtectedRoutes(app)

	log.Printf("starting in-memory server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
