package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Skufu/multidisease/internal/disease"
)

type Config struct {
	Port              string
	GinMode           string
	DatabaseURL       string
	EnableDB          bool
	HistorySQLitePath string
	ModelDir          string
	ModelFiles        map[disease.ID]string
	LogLevel          string
	LogFormat         string
}

// Load reads configuration from the environment, after applying an optional
// .env file in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "release"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		EnableDB:          strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
		HistorySQLitePath: os.Getenv("HISTORY_SQLITE_PATH"),
		ModelDir:          getEnv("MODEL_DIR", "models"),
		ModelFiles: map[disease.ID]string{
			disease.Diabetes:   getEnv("DIABETES_MODEL", "diabetes_model.json"),
			disease.Heart:      getEnv("HEART_MODEL", "heart_disease_model.json"),
			disease.Parkinsons: getEnv("PARKINSONS_MODEL", "parkinsons_model.yaml"),
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or text", cfg.LogFormat)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
