package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	GinMode   string
	LogLevel  string
	JWTSecret []byte
	DBPath    string
	SeedDemo  bool
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local runs.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("APP_ENV", "dev"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "catering_super_secret_2024")),
		DBPath:    getEnv("DB_PATH", "catering.db"),
		SeedDemo:  getEnv("SEED_DEMO", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
