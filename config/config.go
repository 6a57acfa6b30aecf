package config

import (
	"fmt"
	"os"
	"strconv"
)

// MongoConfig holds the document store connection settings
type MongoConfig struct {
	User       string
	Pass       string
	Host       string
	Port       int
	Database   string
	Collection string
}

// URI builds the MongoDB connection string from user/pass/host/port
func (m MongoConfig) URI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%d", m.User, m.Pass, m.Host, m.Port)
}

// Config holds all application configuration
type Config struct {
	Mongo   MongoConfig
	Port    string
	CSVPath string
}

// Load reads configuration from environment variables with development defaults
func Load() *Config {
	return &Config{
		Mongo: MongoConfig{
			User:       getEnv("MONGO_USER", "aacuser"),
			Pass:       getEnv("MONGO_PASS", "SNHU1234"),
			Host:       getEnv("MONGO_HOST", "localhost"),
			Port:       getEnvInt("MONGO_PORT", 27017),
			Database:   getEnv("MONGO_DB", "AAC"),
			Collection: getEnv("MONGO_COL", "animals"),
		},
		Port:    getEnv("PORT", "8080"),
		CSVPath: getEnv("CSV_PATH", "data/aac_shelter_outcomes.csv"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
