package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ENV", "ADDR", "INSIGHTS_ADDR", "AI_BASE_URL", "DB_DRIVER"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, ":5000", cfg.InsightsAddr)
	assert.Equal(t, "http://localhost:5000", cfg.AIBaseURL)
	assert.Equal(t, "postgres", cfg.DBDriver)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("ADDR", ":9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/test.db", cfg.SQLitePath)
}

func TestDSN(t *testing.T) {
	cfg := &Config{PGUser: "app", PGPass: "secret", PGDB: "studydb", PGHost: "db", PGPort: "5433"}
	assert.Equal(t,
		"host=db user=app password=secret dbname=studydb port=5433 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
