// Package config loads server configuration from a .env file and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Transport values accepted by TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds the runtime configuration of the server.
type Config struct {
	Transport      string
	Addr           string
	KrakenAPIURL   string
	TimeoutSeconds int
	LogLevel       string
	LogFile        string
}

// Load reads .env (when present) and the environment. Unset variables fall
// back to defaults suitable for a local stdio server.
func Load() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{
		Transport:      getEnv("TRANSPORT", TransportStdio),
		Addr:           getEnv("ADDR", ":8080"),
		KrakenAPIURL:   getEnv("KRAKEN_API_URL", "https://api.kraken.com/0/public/"),
		TimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 5),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
	}

	if c.Transport != TransportStdio && c.Transport != TransportHTTP {
		return nil, fmt.Errorf("unknown transport: %q", c.Transport)
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
