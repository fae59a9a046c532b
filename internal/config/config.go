package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	SkipAuth    bool
	Environment string
	AppId       string

	DataPath string // Local snapshot file for the CRM aggregate
	LogPath  string // JSONL audit log written by the async log writer

	MongoURI     string // Empty disables the remote mirror entirely
	DBName       string
	SyncInterval time.Duration // Forced-flush cadence for the remote mirror

	// Whether past-dated events count as "upcoming" on the dashboard.
	UpcomingIncludePast bool

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		JWTSecret:           getEnv("JWT_SECRET", "secret"),
		SkipAuth:            getEnv("SKIP_AUTH", "false") == "true",
		Environment:         getEnv("ENVIRONMENT", "development"),
		AppId:               getEnv("APP_ID", "studio-crm"),
		DataPath:            getEnv("DATA_PATH", "./data/crm_data.json"),
		LogPath:             getEnv("LOG_PATH", "./data/studio-crm.log.jsonl"),
		MongoURI:            getEnv("MONGO_URI", ""),
		DBName:              getEnv("DB_NAME", "studio-crm"),
		SyncInterval:        getDuration("SYNC_INTERVAL", 5*time.Minute),
		UpcomingIncludePast: getEnv("UPCOMING_INCLUDE_PAST", "true") == "true",
		AdminEmail:          getEnv("ADMIN_EMAIL", "owner@studio.local"),
		AdminPassword:       getEnv("ADMIN_PASSWORD", "changeme"),
		AdminName:           getEnv("ADMIN_NAME", "Studio Owner"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
