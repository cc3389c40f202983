package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds application settings read from the environment
type Config struct {
	DB         *DBConfig
	ServerPort string

	// DefaultUserID owns every booking while there is no authentication
	DefaultUserID int

	// VerifyDestination makes the booking workflow look the destination up before
	// inserting. When false a dangling destination id fails on the foreign key.
	VerifyDestination bool

	AllowedOrigins []string
}

// Load reads the application configuration from environment variables
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DB:             dbCfg,
		ServerPort:     os.Getenv("SERVER_PORT"),
		DefaultUserID:  1,
		AllowedOrigins: []string{"*"},
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "5000" // Default port
	}

	if v := os.Getenv("DEFAULT_USER_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid DEFAULT_USER_ID %q", v)
		}
		cfg.DefaultUserID = id
	}

	if v := os.Getenv("BOOKING_VERIFY_DESTINATION"); v != "" {
		verify, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BOOKING_VERIFY_DESTINATION %q: %w", v, err)
		}
		cfg.VerifyDestination = verify
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}

	return cfg, nil
}
