package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Limits   LimitsConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StoreConfig selects the trip document store: postgres, mongo or memory.
type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig enables shared drafts and save notifications. An empty URL
// keeps drafts in memory and disables notifications.
type RedisConfig struct {
	URL      string
	DraftTTL time.Duration
}

// JWTConfig holds the operator token secret. An empty secret disables the
// auth middleware.
type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

// LimitsConfig caps how often one operator may save. Zero disables the limit.
type LimitsConfig struct {
	SavesPerMinute int
	SaveBurst      int
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too (Docker/K8s).
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "12"))
	draftTTL, _ := strconv.Atoi(getEnv("DRAFT_TTL_HOURS", "72"))
	savesPerMinute, _ := strconv.Atoi(getEnv("SAVE_RATE_PER_MINUTE", "30"))
	saveBurst, _ := strconv.Atoi(getEnv("SAVE_RATE_BURST", "5"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", "postgres"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "trip_desk"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "trip_desk"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			DraftTTL: time.Duration(draftTTL) * time.Hour,
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", ""),
			Expiration: time.Duration(jwtExp) * time.Hour,
		},
		Limits: LimitsConfig{
			SavesPerMinute: savesPerMinute,
			SaveBurst:      saveBurst,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
