package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/logger"
)

// Config holds the runtime configuration, loaded from the environment.
type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	AllowedOrigin string
}

// LoadConfig reads the .env file if present and builds the configuration
// from environment variables with local-development defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found, using environment variables")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "ecocoins"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
