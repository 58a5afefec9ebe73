// Package config loads process configuration for the HTTP transport from
// environment variables, failing fast on an invalid value.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/refap3/sudokututor/pkg/constants"
)

// Config holds the server's runtime configuration.
type Config struct {
	Port string
}

// Load reads configuration from the environment. PORT must be a valid
// TCP port number when set; an empty PORT falls back to constants.DefaultPort.
func Load() (*Config, error) {
	port := getEnv("PORT", constants.DefaultPort)
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("config: PORT %q is not a valid port number", port)
	}
	return &Config{Port: port}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
