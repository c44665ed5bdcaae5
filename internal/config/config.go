// Package config loads server configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	DBPath string
	JWT    JWTConfig
	AI     AIConfig
	CORS   CORSConfig
}

type JWTConfig struct {
	Secret string
}

type AIConfig struct {
	APIKey string
	Model  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	return &Config{
		Port:   getEnv("PORT", "4000"),
		DBPath: getEnv("DB_PATH", "./data/tripfolio.db"),
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		AI: AIConfig{
			APIKey: getEnv("GOOGLE_AI_STUDIO_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				getEnv("FRONTEND_URL", "http://localhost:3000"),
				"http://localhost:3000",
				"http://127.0.0.1:3000",
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
