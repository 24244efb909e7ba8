package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"wd_utils_go/models"
)

type Config struct {
	DateFormat models.DateFormat
	TimeMode   models.TimeMode
	Timezone   string
	Language   string
	// Verbose enables per-argument logging in the CLI
	Verbose bool

	location *time.Location
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] No .env file found, using system environment variables")
	}

	format, err := models.ParseDateFormat(getEnv("WD_DATE_FORMAT", "BR"))
	if err != nil {
		log.Printf("[WARNING] %v, falling back to %s", err, models.DateFormatBR)
		format = models.DateFormatBR
	}

	mode, err := models.ParseTimeMode(getEnv("WD_TIME_MODE", "false"))
	if err != nil {
		log.Printf("[WARNING] %v, falling back to %s", err, models.TimeNone)
		mode = models.TimeNone
	}

	cfg := &Config{
		DateFormat: format,
		TimeMode:   mode,
		Timezone:   getEnv("WD_TIMEZONE", "Local"),
		Language:   getEnv("WD_LANGUAGE", "pt-BR"),
		Verbose:    getEnvBool("WD_VERBOSE", false),
	}
	cfg.location = loadLocation(cfg.Timezone)

	return cfg
}

// Location returns the configured time zone, time.Local when unset or unknown
func (c *Config) Location() *time.Location {
	if c.location == nil {
		c.location = loadLocation(c.Timezone)
	}
	return c.location
}

// Now returns the current time in the configured zone. It satisfies services.Clock.
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location())
}

func loadLocation(name string) *time.Location {
	if name == "" || strings.EqualFold(name, "Local") {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[WARNING] Unknown timezone %q, using local time: %v", name, err)
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
