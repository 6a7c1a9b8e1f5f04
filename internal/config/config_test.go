package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PASSWORD_MIN_LENGTH", "")
	t.Setenv("READ_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 8, cfg.PasswordMinLength)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "music_db", cfg.DBName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PASSWORD_MIN_LENGTH", "12")
	t.Setenv("READ_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_PER_MIN", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 12, cfg.PasswordMinLength)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 60, cfg.RateLimitPerMin)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "music", DBPort: "5432", DBSSLMode: "disable",
	}
	assert.Equal(t, "host=db user=u password=p dbname=music port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
