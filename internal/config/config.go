package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string

	// StrictTests tightens the test-engine invariants that have so far been
	// left soft: question-count cap, submit only while active, forward-only
	// status transitions and dedup scoring. Off by default to keep the
	// behavior existing clients rely on.
	StrictTests bool

	ContestRefreshSpec string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", "postgres"),
		DBName:             getEnv("DB_NAME", "codetrack"),
		JWTSecret:          getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		StrictTests:        getEnv("STRICT_TESTS", "") == "true",
		ContestRefreshSpec: getEnv("CONTEST_REFRESH_SPEC", "@every 1h"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
