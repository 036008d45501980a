package config

import "os"

// Config holds all configuration for the subway route server.
type Config struct {
	Port     string
	DataFile string
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		DataFile: getEnv("SUBWAY_DATA_FILE", "data/subway.txt"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
