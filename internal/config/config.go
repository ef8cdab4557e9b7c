package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Addr        string
	DatabaseURL string
	Debug       bool
	LogPath     string
	// HourlyRate is the room-time tariff in currency units per hour.
	HourlyRate decimal.Decimal
}

// Load reads .env if present, then the environment. Missing keys fall back
// to local-development defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", "karaoke.db"),
		Debug:       getBool("DEBUG", false),
		LogPath:     getEnv("LOG_PATH", "logs/"),
		HourlyRate:  decimal.NewFromInt(1000),
	}

	if raw := os.Getenv("HOURLY_RATE"); raw != "" {
		if rate, err := decimal.NewFromString(raw); err == nil && rate.IsPositive() {
			cfg.HourlyRate = rate
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
