package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	CORS_ORIGIN string

	UPLOAD_DIR string
	DATA_DIR   string

	// Base URL of the website-content API the resolver fetches from.
	// Defaults to this server's own address.
	CONTENT_API_BASE string

	// When true the catalog serves from the in-process fixture set
	// instead of Postgres. Local development only.
	USE_MOCK_DATA bool

	ADMIN_EMAIL         string
	ADMIN_PASSWORD_HASH string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	USE_MOCK_DATA = getEnv("USE_MOCK_DATA", "false") == "true"

	if USE_MOCK_DATA {
		DB_URL = getEnv("DB_URL", "")
	} else {
		DB_URL = mustEnv("DB_URL")
	}
	JWT_SECRET = mustEnv("JWT_SECRET")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "uploads/posters")
	DATA_DIR = getEnv("DATA_DIR", "data")

	CONTENT_API_BASE = getEnv("CONTENT_API_BASE", "http://localhost:"+PORT)

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD_HASH = getEnv("ADMIN_PASSWORD_HASH", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
