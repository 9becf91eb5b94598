package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Planner PlannerConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JWTSecret          string
}

type StoreConfig struct {
	// Backend selects the session store: "memory" (default), "redis" or
	// "postgres".
	Backend      string
	RedisURL     string
	PostgresDSN  string
	SessionHours int
}

type PlannerConfig struct {
	// MaxTopics caps the per-session topic collection (guards against
	// degenerate schedules).
	MaxTopics int
	// PassCapFactor bounds the allocator's daily packing loop.
	PassCapFactor int
	// DefaultPolicy is the allocation policy used when a request names none.
	DefaultPolicy string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			JWTSecret:          getEnv("JWT_SECRET", "dev-secret"),
		},
		Store: StoreConfig{
			Backend:      getEnv("SESSION_STORE", "memory"),
			RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
			PostgresDSN:  getEnv("DB_CONNECTION_STRING", ""),
			SessionHours: getEnvAsInt("SESSION_TTL_HOURS", 24),
		},
		Planner: PlannerConfig{
			MaxTopics:     getEnvAsInt("PLANNER_MAX_TOPICS", 500),
			PassCapFactor: getEnvAsInt("PLANNER_PASS_CAP_FACTOR", 3),
			DefaultPolicy: getEnv("PLANNER_POLICY", "proportional"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
