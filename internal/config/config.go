package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the process-level settings for the server and oracle daemons.
// Values come from the environment, optionally seeded from a .env file.
type Config struct {
	DatabasePath   string
	EntrantsDir    string
	ArchiveDir     string
	ListenAddress  string
	LogLevel       string
	LogFile        string
	OracleInterval time.Duration
}

func Load() Config {
	// .env is optional outside development
	_ = godotenv.Load()

	return Config{
		DatabasePath:   getenv("DATABASE_PATH", "persistent.db"),
		EntrantsDir:    getenv("ENTRANTS_DIR", "entrants-data"),
		ArchiveDir:     getenv("ARCHIVE_DIR", "archive-data"),
		ListenAddress:  getenv("LISTEN_ADDRESS", ":8080"),
		LogLevel:       getenv("LOG_LEVEL", "debug"),
		LogFile:        os.Getenv("LOG_FILE"),
		OracleInterval: getenvDuration("ORACLE_INTERVAL_SECONDS", 2*time.Second),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
