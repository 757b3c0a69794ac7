package config

import (
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	endpoint := os.Getenv("FRAUDE_API_ENDPOINT")
	environment := os.Getenv("ENVIRONMENT")
	logFile := os.Getenv("FRAUDE_LOG_FILE")

	if endpoint == "" {
		endpoint = "http://localhost:5000"
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		APIEndpoint: endpoint,
		Environment: environment,
		LogFile:     logFile,
	}, nil
}
