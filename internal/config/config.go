package config

import (
	"os"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	// Outbound pet submission API.
	SubmitBaseURL string
	SubmitToken   string

	// Random pet image API.
	ImageURL     string
	ImageTimeout time.Duration
}

// Load reads configuration from environment variables. Values that have a
// sensible default fall back to it; DatabaseURL and JWTSecret are validated by
// the binary that needs them.
func Load() Config {
	addr := os.Getenv("PET_STORE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	submitBase := os.Getenv("PET_SUBMIT_BASE_URL")
	if submitBase == "" {
		submitBase = "https://reqres.in/api"
	}

	imageURL := os.Getenv("PET_IMAGE_URL")
	if imageURL == "" {
		imageURL = "https://dog.ceo/api/breeds/image/random"
	}

	imageTimeout := 8 * time.Second
	if raw := os.Getenv("PET_IMAGE_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			imageTimeout = d
		}
	}

	return Config{
		Addr:          addr,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SubmitBaseURL: submitBase,
		SubmitToken:   os.Getenv("PET_SUBMIT_TOKEN"),
		ImageURL:      imageURL,
		ImageTimeout:  imageTimeout,
	}
}
