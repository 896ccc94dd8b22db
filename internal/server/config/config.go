// Package config loads the server configuration from the environment, with a
// .env file as a convenience for local development.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Address      string
	JWTSecret    string
	TokenTTL     time.Duration
	GeminiAPIKey string
	GeminiModel  string
	BodyLimit    int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment values.")
	}

	return &Config{
		Address:      getEnv("ADDRESS", ":8000"),
		JWTSecret:    getEnv("SECRET_KEY", "your-secret-key-here"),
		TokenTTL:     getEnvAsDuration("TOKEN_TTL", "30m"),
		GeminiAPIKey: getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		BodyLimit:    getEnvAsInt("BODY_LIMIT", 50*1024*1024),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if duration, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
