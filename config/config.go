package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server  ServerConfig
	Model   ModelConfig
	History HistoryConfig
	Redis   RedisConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port int
}

type ModelConfig struct {
	// Dir holds the exported model artifacts (classifier + scaler).
	Dir            string
	ClassifierFile string
	ScalerFile     string
	// AllowFallback enables the rule-based heuristic when no classifier
	// artifact exists. Off by default: a missing artifact is fatal.
	AllowFallback bool
}

type HistoryConfig struct {
	// Limit caps the number of records kept per session. 0 means unbounded.
	Limit int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins string
}

func LoadConfig() (*Config, error) {
	serverPort, err := getIntEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	historyLimit, err := getIntEnv("HISTORY_LIMIT", 50)
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_LIMIT: %w", err)
	}

	redisPort, err := getIntEnv("REDIS_PORT", 6379)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}

	redisDB, err := getIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		Model: ModelConfig{
			Dir:            getEnv("MODEL_DIR", "model"),
			ClassifierFile: getEnv("MODEL_CLASSIFIER_FILE", "traffic_severity_model.json"),
			ScalerFile:     getEnv("MODEL_SCALER_FILE", "scaler.json"),
			AllowFallback:  getBoolEnv("MODEL_ALLOW_FALLBACK", false),
		},
		History: HistoryConfig{
			Limit: historyLimit,
		},
		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     redisPort,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func getBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value == "true" || value == "1"
}
