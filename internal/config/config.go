package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	StatusLogFilePath  string
	CorsAllowedOrigins string
	StaticDir          string
}

// BackendConfig describes the RAG backend this client talks to. The liveness
// probe has its own timeout and interval because it runs on an independent
// transport with different failure semantics.
type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	HealthTimeout  time.Duration
	HealthInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			StatusLogFilePath:  getEnv("STATUS_LOG_FILE_PATH", "status.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			StaticDir:          getEnv("STATIC_DIR", "./web/static"),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_BASE_URL", "http://localhost:8000"),
			RequestTimeout: getEnvAsDuration("BACKEND_REQUEST_TIMEOUT", 60*time.Second),
			HealthTimeout:  getEnvAsDuration("BACKEND_HEALTH_TIMEOUT", 5*time.Second),
			HealthInterval: getEnvAsDuration("BACKEND_HEALTH_INTERVAL", 10*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
