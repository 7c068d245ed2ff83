package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	StateFile      string
	DefaultHoldTTL time.Duration
	SeatRows       int
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env 不存在時忽略，環境變數優先
	_ = godotenv.Load()

	AppConfig = &Config{
		StateFile:      getEnv("AIRLINE_STATE_FILE", "airline_state.json"),
		DefaultHoldTTL: time.Duration(getEnvInt("AIRLINE_HOLD_MINUTES", 10)) * time.Minute,
		SeatRows:       getEnvInt("AIRLINE_SEAT_ROWS", 24),
	}

	return AppConfig
}

func LoadTestConfig(dir string) *Config {
	return &Config{
		StateFile:      filepath.Join(dir, "airline_state_test.json"),
		DefaultHoldTTL: 10 * time.Minute,
		SeatRows:       24,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		panic(err)
	}
	return value
}
