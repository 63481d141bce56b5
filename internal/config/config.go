package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the demo host configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`

	CatalogPath   string        `validate:"required"`
	MetricsPort   int           `validate:"min=0,max=65535"` // 0 disables the metrics server
	FrameInterval time.Duration `validate:"gt=0"`
	DemoFrames    uint64        // 0 runs until interrupted
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		CatalogPath: getEnv(EnvCatalogPath, DefaultCatalogPath),
	}

	port, err := strconv.Atoi(getEnv(EnvMetricsPort, DefaultMetricsPort))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvMetricsPort, err)
	}
	cfg.MetricsPort = port

	interval, err := time.ParseDuration(getEnv(EnvFrameInterval, DefaultFrameInterval))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvFrameInterval, err)
	}
	cfg.FrameInterval = interval

	frames, err := strconv.ParseUint(getEnv(EnvDemoFrames, DefaultDemoFrames), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvDemoFrames, err)
	}
	cfg.DemoFrames = frames

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the host runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
