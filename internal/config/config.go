package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string // dev or prod
	Addr         string // API gateway bind address, e.g. :4000
	InsightsAddr string // insight service bind address, e.g. :5000
	AIBaseURL    string // where the gateway reaches the insight service

	// store
	DBDriver   string // postgres (default) or sqlite
	SQLitePath string
	PGUser     string
	PGPass     string
	PGDB       string
	PGHost     string
	PGPort     string
}

// Load reads .env (when present) plus environment variables.
// Precedence: env var > .env file > default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{
		Env:          get("ENV", "dev"),
		Addr:         get("ADDR", ":4000"),
		InsightsAddr: get("INSIGHTS_ADDR", ":5000"),
		AIBaseURL:    get("AI_BASE_URL", "http://localhost:5000"),
		DBDriver:     get("DB_DRIVER", "postgres"),
		SQLitePath:   get("SQLITE_PATH", "studypulse.db"),
		PGUser:       get("PGUSER", "app"),
		PGPass:       get("PGPASSWORD", "app"),
		PGDB:         get("PGDATABASE", "appdb"),
		PGHost:       get("PGHOST", "localhost"),
		PGPort:       get("PGPORT", "5432"),
	}
	return c, nil
}

// DSN is the GORM postgres data source name.
// sslmode=disable is for dev; switch to require in production.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.PGHost, c.PGUser, c.PGPass, c.PGDB, c.PGPort,
	)
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
