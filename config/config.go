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

	// SITE_URL is the public frontend origin; used for CORS, OAuth
	// redirects and links in verification emails.
	SITE_URL string

	GOOGLE_CLIENT_ID     string
	GOOGLE_CLIENT_SECRET string
	GOOGLE_REDIRECT_URL  string

	S3_ENDPOINT   string
	S3_ACCESS_KEY string
	S3_SECRET_KEY string
	S3_BUCKET     string
	S3_REGION     string
	S3_USE_SSL    bool
	S3_PUBLIC_URL string

	REVALIDATE_URL    string
	REVALIDATE_SECRET string

	SMTP_HOST string
	SMTP_PORT string
	SMTP_USER string
	SMTP_PASS string
	SMTP_FROM string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	SITE_URL = getEnv("SITE_URL", "http://localhost:3000")

	// Google sign-in is optional; routes are only registered when set.
	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")

	S3_ENDPOINT = getEnv("S3_ENDPOINT", "localhost:9000")
	S3_ACCESS_KEY = getEnv("S3_ACCESS_KEY", "")
	S3_SECRET_KEY = getEnv("S3_SECRET_KEY", "")
	S3_BUCKET = getEnv("S3_BUCKET", "portfolio-media")
	S3_REGION = getEnv("S3_REGION", "us-east-1")
	S3_USE_SSL = getEnv("S3_USE_SSL", "false") == "true"
	S3_PUBLIC_URL = getEnv("S3_PUBLIC_URL", "")

	REVALIDATE_URL = getEnv("REVALIDATE_URL", "")
	REVALIDATE_SECRET = getEnv("REVALIDATE_SECRET", "")

	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_USER = getEnv("SMTP_USER", "")
	SMTP_PASS = getEnv("SMTP_PASS", "")
	SMTP_FROM = getEnv("SMTP_FROM", "no-reply@localhost")
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
