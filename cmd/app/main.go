package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/kittipatv/pet-storefront-backend/internal/cart"
	"github.com/kittipatv/pet-storefront-backend/internal/config"
	"github.com/kittipatv/pet-storefront-backend/internal/middleware"
	"github.com/kittipatv/pet-storefront-backend/internal/pet"
	"github.com/kittipatv/pet-storefront-backend/internal/petapi"
	"github.com/kittipatv/pet-storefront-backend/internal/shopper"
)

// main wires dependencies and starts the HTTP server backed by postgres.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	mustMigrate(db)

	petRepo := pet.NewPostgresRepository(db)
	seedCatalog(db, petRepo)

	apiClient := petapi.NewClient(petapi.Options{
		BaseURL:      cfg.SubmitBaseURL,
		Token:        cfg.SubmitToken,
		ImageURL:     cfg.ImageURL,
		ImageTimeout: cfg.ImageTimeout,
	})
	petService := pet.NewService(petRepo, apiClient)
	petHandler := pet.NewHandler(petService)

	shopperService := shopper.NewService(shopper.NewPostgresRepository(db))
	shopperHandler := shopper.NewHandler(shopperService, cfg.JWTSecret)

	shopperHandler.RegisterPublicRoutes(app)
	petHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	petHandler.RegisterProtectedRoutes(app)

	cartHandler := cart.NewHandler(cart.NewSessions(), petService)
	cartHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	return db
}

func mustMigrate(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS pet (
		pet_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		breed TEXT NOT NULL,
		age INT,
		price NUMERIC NOT NULL,
		image_url TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT now()
	)`); err != nil {
		log.Fatalf("create pet table: %v", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS shopper (
		shopper_id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		name TEXT,
		created_at TEXT
	)`); err != nil {
		log.Fatalf("create shopper table: %v", err)
	}
}

// seedCatalog inserts the sample pets on first run so the listing screen is
// never empty.
func seedCatalog(db *sql.DB, repo pet.Repository) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM pet`).Scan(&count); err != nil || count > 0 {
		return
	}
	for _, p := range pet.SeedPets() {
		if _, err := repo.Create(p); err != nil {
			log.Printf("warning: seed pet %s: %v", p.ID, err)
		}
	}
}
