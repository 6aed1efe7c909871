package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"skycast/parser"
)

const (
	// APIKeyEnv is the environment variable holding the OpenWeatherMap API key
	APIKeyEnv = "OPENWEATHER_API_KEY"

	DefaultWeatherURL  = "http://api.openweathermap.org/data/2.5/weather"
	DefaultIconURL     = "http://openweathermap.org/img/wn"
	// DefaultHTTPTimeout of 0 leaves net/http without a client timeout;
	// a hung lookup is abandoned when the next one cancels it.
	DefaultHTTPTimeout time.Duration = 0

	// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second
	DefaultRateLimit = 1.0
	DefaultRateBurst = 5

	DefaultLogDir = "~/.config/skycast"
)

// Config holds everything the application reads from its environment.
// There is no configuration file; a .env file in the working directory is
// honoured so the API key does not need to be exported in the shell.
type Config struct {
	APIKey      string
	WeatherURL  string
	IconURL     string
	HTTPTimeout time.Duration
	RateLimit   float64 // requests per second towards the weather endpoint
	RateBurst   int
	LogDir      string
}

// Load reads the configuration from the process environment, after loading
// an optional .env file. Missing optional values fall back to defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[Config] Warning: error loading .env file: %v", err)
	}

	c := &Config{}
	c.APIKey = strings.TrimSpace(os.Getenv(APIKeyEnv))
	c.WeatherURL = getEnv("SKYCAST_WEATHER_URL", DefaultWeatherURL)
	c.IconURL = strings.TrimRight(getEnv("SKYCAST_ICON_URL", DefaultIconURL), "/")
	c.HTTPTimeout = getEnvDuration("SKYCAST_HTTP_TIMEOUT", DefaultHTTPTimeout)
	c.RateLimit = getEnvFloat("SKYCAST_RATE_LIMIT", DefaultRateLimit)
	c.RateBurst = getEnvInt("SKYCAST_RATE_BURST", DefaultRateBurst)
	c.LogDir = getEnv("SKYCAST_LOG_DIR", DefaultLogDir)

	if c.APIKey == "" {
		log.Printf("[Config] %s is not set, weather lookups will be rejected by the provider", APIKeyEnv)
	}

	return c
}

// HasAPIKey reports whether an API key was found.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// VerifyLogDirectory expands the configured log directory and creates it if needed.
func (c *Config) VerifyLogDirectory() (string, error) {
	dir, err := parser.ExpandPath(c.LogDir)
	if err != nil {
		return "", fmt.Errorf("cannot expand log directory %s: %w", c.LogDir, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating directory %s: %w", dir, err)
	}

	return dir, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
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
	if err != nil || n <= 0 {
		log.Printf("[Config] Ignoring invalid %s=%q: using %d", key, v, def)
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Printf("[Config] Ignoring invalid %s=%q: using %g", key, v, def)
		return def
	}
	return f
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[Config] Ignoring invalid %s=%q: using %v", key, v, def)
		return def
	}
	return d
}
