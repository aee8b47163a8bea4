package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds the server configuration read from the environment
type Config struct {
	// gRPC
	GRPCAddr string
	APIToken string

	// Storage
	DataBackend string
	DBConnStr   string

	// Allocation
	PaletteSize int

	// Logging
	Env string
}

// Load reads the configuration from the environment, applying defaults.
// When DB_CONN_STR is empty it is built from the individual DB_* variables.
func Load() *Config {
	cfg := &Config{
		GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
		APIToken:    getEnv("API_TOKEN", "dev-token"),
		DataBackend: strings.ToLower(getEnv("DATA_BACKEND", BackendMemory)),
		DBConnStr:   os.Getenv("DB_CONN_STR"),
		PaletteSize: getEnvInt("PALETTE_SIZE", 8),
		Env:         getEnv("ENV", "dev"),
	}

	if cfg.DBConnStr == "" {
		cfg.DBConnStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "wealthdash"),
		)
	}

	return cfg
}

// Validate returns every configuration problem found, joined in a single error
func (c *Config) Validate() error {
	var problems []string

	if c.GRPCAddr == "" {
		problems = append(problems, "GRPC_ADDR cannot be empty")
	}

	if c.APIToken == "" {
		problems = append(problems, "API_TOKEN cannot be empty")
	}

	switch c.DataBackend {
	case BackendMemory, BackendPostgres:
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend '%s': must be one of %s, %s", c.DataBackend, BackendMemory, BackendPostgres))
	}

	if c.PaletteSize <= 0 {
		problems = append(problems, fmt.Sprintf("invalid palette size %d: must be positive", c.PaletteSize))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// Surfaced by Validate
		return -1
	}
	return n
}
