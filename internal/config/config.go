// Package config handles application configuration via environment variables.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configurable values for the app.
type Config struct {
	Env           string
	Addr          string
	WhatsAppPhone string
}

// Load reads an optional .env file, then environment variables, and
// populates a Config struct.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:           getEnv("ENV", "development"),
		Addr:          getEnv("ADDR", ":8080"),
		WhatsAppPhone: getEnv("WHATSAPP_PHONE", "21652287812"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
