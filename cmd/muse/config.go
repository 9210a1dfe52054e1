package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	MongoURL      string
	DBName        string
	YouTubeAPIKey string
	Addr          string
	AllowedOrigin string
	LogLevel      string
	LogFormat     string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return Config{}, errors.New("MONGO_URL env var is required")
	}

	addr := fmt.Sprintf(":%s", envOrDefault("PORT", "8001"))

	return Config{
		MongoURL:      mongoURL,
		DBName:        envOrDefault("DB_NAME", "muse"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		Addr:          addr,
		AllowedOrigin: envOrDefault("CORS_ALLOWED_ORIGINS", "*"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
