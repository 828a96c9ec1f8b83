package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// server config
	APP_PORT string
	// storage config
	STORE_PATH string
	STORE_KEY  string
	// presentation config
	DEFAULT_PAGE_SIZE int
	PAGE_SIZE_OPTIONS []int
	SEARCH_DEBOUNCE   time.Duration
	// excel report config (optional YAML layout)
	REPORT_CONFIG_PATH string
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
}

func LoadEnvConfig() error {
	// A missing .env file is fine; env vars and defaults still apply.
	_ = godotenv.Load()

	DefaultEnvConfig = &envConfig{
		APP_PORT:           getEnvString("APP_PORT", "8080"),
		STORE_PATH:         getEnvString("STORE_PATH", "roster.db"),
		STORE_KEY:          getEnvString("STORE_KEY", "employees"),
		DEFAULT_PAGE_SIZE:  getEnvInt("DEFAULT_PAGE_SIZE", 10),
		PAGE_SIZE_OPTIONS:  getEnvIntList("PAGE_SIZE_OPTIONS", []int{5, 10, 25, 50}),
		SEARCH_DEBOUNCE:    getEnvDuration("SEARCH_DEBOUNCE", 180*time.Millisecond),
		REPORT_CONFIG_PATH: getEnvString("REPORT_CONFIG_PATH", ""),
		LOG_FILE_PATH:      getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:          getEnvString("LOG_LEVEL", "info"),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvIntList(key string, fallback []int) []int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []int
	for _, part := range strings.Split(val, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || i <= 0 {
			return fallback
		}
		out = append(out, i)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Millisecond
		}
	}
	return fallback
}
