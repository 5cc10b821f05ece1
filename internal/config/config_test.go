package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("LISTEN_ADDRESS", "")
	t.Setenv("ORACLE_INTERVAL_SECONDS", "")

	cfg := Load()
	assert.Equal(t, "persistent.db", cfg.DatabasePath)
	assert.Equal(t, ":8080", cfg.ListenAddress)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.OracleInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/raffle.db")
	t.Setenv("LISTEN_ADDRESS", ":9999")
	t.Setenv("ORACLE_INTERVAL_SECONDS", "30")

	cfg := Load()
	assert.Equal(t, "/tmp/raffle.db", cfg.DatabasePath)
	assert.Equal(t, ":9999", cfg.ListenAddress)
	assert.Equal(t, 30*time.Second, cfg.OracleInterval)
}

func TestOracleIntervalRejectsGarbage(t *testing.T) {
	t.Setenv("ORACLE_INTERVAL_SECONDS", "not-a-number")
	assert.Equal(t, 2*time.Second, Load().OracleInterval)

	t.Setenv("ORACLE_INTERVAL_SECONDS", "-5")
	assert.Equal(t, 2*time.Second, Load().OracleInterval)
}
