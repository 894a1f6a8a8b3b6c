package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	RedisAddr   string
	APIKey      string
	CORSOrigins string
	TablePrefix string
	// Pipeline directories
	UploadDir string
	ReportDir string
	// File logging (empty LogDir keeps logs on stdout only)
	LogDir      string
	LogMaxFiles int
	// Worker tuning
	WorkerConcurrency int
	MaxRetry          int
	// Canonical reservation status literals (locale-injectable)
	Statuses StatusLiterals
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       env,
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RedisAddr:         getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		APIKey:            getEnv("API_KEY", ""),
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:       getTablePrefix(env),
		UploadDir:         getEnv("UPLOAD_DIR", "data/uploads"),
		ReportDir:         getEnv("REPORT_DIR", "data/reports"),
		LogDir:            getEnv("LOG_DIR", "logs"),
		LogMaxFiles:       getEnvInt("LOG_MAX_FILES", 10),
		WorkerConcurrency: getEnvInt("WORKER_CONCURRENCY", 4),
		MaxRetry:          getEnvInt("MAX_RETRY", 5),
		Statuses:          LoadStatusLiterals(os.Getenv("STATUS_LITERALS_FILE")),
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	// Auto-generate based on environment
	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
