package config

import (
	"os"
	"strconv"
	"strings"

	"solarhub/internal/logger"

	"github.com/joho/godotenv"
)

// Database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the application's configuration.
type Config struct {
	Port           int
	DBDriver       string
	DBDSN          string
	LogLevel       logger.Level
	AllowedOrigins []string
	CompanyName    string
	PDFFontDir     string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:           8080,
		DBDriver:       DriverSQLite,
		DBDSN:          "solarhub.db",
		LogLevel:       logger.InfoLevel,
		AllowedOrigins: []string{"*"},
		CompanyName:    "SolarHub Energy",
	}
}

// Load reads an optional .env file, then the process environment. Bad values
// are reported and replaced by their defaults rather than failing start-up.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on system environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) Config {
	cfg := Default()

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			logger.Warn("Invalid PORT %q, using %d", v, cfg.Port)
		} else {
			cfg.Port = port
		}
	}

	if v := strings.ToLower(getenv("DB_DRIVER")); v != "" {
		switch v {
		case DriverSQLite, DriverPostgres:
			cfg.DBDriver = v
		default:
			logger.Warn("Unsupported DB_DRIVER %q, using %s", v, cfg.DBDriver)
		}
	}
	if v := getenv("DB_DSN"); v != "" {
		cfg.DBDSN = v
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		level, ok := logger.ParseLevel(v)
		if !ok {
			logger.Warn("Unknown LOG_LEVEL %q, using info", v)
		}
		cfg.LogLevel = level
	}

	if v := getenv("ALLOWED_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}

	if v := getenv("COMPANY_NAME"); v != "" {
		cfg.CompanyName = v
	}
	cfg.PDFFontDir = getenv("PDF_FONT_DIR")

	return cfg
}
