package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the Postgres connection parameters read from the environment.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Load reads connection parameters from the environment. A .env file in the
// working directory is loaded first if present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Host:     os.Getenv("PG_HOST"),
		Port:     os.Getenv("PG_PORT"),
		User:     os.Getenv("PG_USER"),
		Password: os.Getenv("PG_PASSWORD"),
		Database: os.Getenv("PG_DATABASE"),
	}
}

// DSN renders the config as a keyword/value connection string for pgx.
// Transport is always encrypted (sslmode=require).
func (c Config) DSN() string {
	kv := []string{
		"host=" + quote(c.Host),
		"port=" + quote(c.Port),
		"user=" + quote(c.User),
		"password=" + quote(c.Password),
		"dbname=" + quote(c.Database),
		"sslmode=require",
	}
	return strings.Join(kv, " ")
}

// quote wraps a value in single quotes so passwords containing spaces or
// symbols survive keyword/value parsing.
func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return fmt.Sprintf("'%s'", v)
}
