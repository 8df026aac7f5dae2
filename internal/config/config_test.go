package config

import (
	"testing"

	"solarhub/internal/logger"

	"github.com/stretchr/testify/assert"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(envOf(nil))
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{
		"PORT":            "9000",
		"DB_DRIVER":       "Postgres",
		"DB_DSN":          "host=localhost user=solar dbname=solar",
		"LOG_LEVEL":       "debug",
		"ALLOWED_ORIGINS": "https://a.example, https://b.example,,",
		"COMPANY_NAME":    "Sunrise Solar",
		"PDF_FONT_DIR":    "/fonts",
	}))

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "host=localhost user=solar dbname=solar", cfg.DBDSN)
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "Sunrise Solar", cfg.CompanyName)
	assert.Equal(t, "/fonts", cfg.PDFFontDir)
}

func TestFromEnvInvalidValuesFallBack(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{
		"PORT":      "not-a-number",
		"DB_DRIVER": "mysql",
		"LOG_LEVEL": "loud",
	}))

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, logger.InfoLevel, cfg.LogLevel)
}
