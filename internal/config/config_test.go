package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PG_HOST", "db.example.com")
	t.Setenv("PG_PORT", "5432")
	t.Setenv("PG_USER", "app")
	t.Setenv("PG_PASSWORD", "s3cret")
	t.Setenv("PG_DATABASE", "appdb")

	cfg := Load()

	assert.Equal(t, "db.example.com", cfg.Host)
	assert.Equal(t, "5432", cfg.Port)
	assert.Equal(t, "app", cfg.User)
	assert.Equal(t, "s3cret", cfg.Password)
	assert.Equal(t, "appdb", cfg.Database)
}

func TestDSNAlwaysRequiresTLS(t *testing.T) {
	cfg := Config{Host: "localhost", Port: "5432", User: "u", Password: "p", Database: "d"}

	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestDSNQuotesAwkwardValues(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     "5432",
		User:     "app",
		Password: `pa ss'wo\rd`,
		Database: "appdb",
	}

	assert.Contains(t, cfg.DSN(), `password='pa ss\'wo\\rd'`)
}
