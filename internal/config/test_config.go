package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration from the .env file or environment variables for integration tests.
// Redis settings are read from TEST_REDIS_* variables and fall back to a local Redis on the default port.
func LoadTestConfig() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist - it's optional)
	// Try both possible paths
	_ = godotenv.Load("./../../configs/.env")
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	cfg.Redis.Host = getString("TEST_REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = getInt("TEST_REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("TEST_REDIS_PASSWORD")
	if cfg.Redis.DB, err = getInt("TEST_REDIS_DB", 0); err != nil {
		return nil, err
	}

	return cfg, nil
}
