package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
// Credentials are never hardcoded; a local .env file is supported for dev.
type Config struct {
	Port string

	DatabaseDSN string

	LLMProvider  string // "openai" or "googleai"
	OpenAIAPIKey string
	GeminiAPIKey string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_NAME", "jobboard"),
		getenv("DB_PORT", "5432"),
		getenv("DB_SSLMODE", "disable"),
	)

	return &Config{
		Port:         getenv("PORT", "8080"),
		DatabaseDSN:  dsn,
		LLMProvider:  getenv("LLM_PROVIDER", "openai"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
