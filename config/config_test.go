package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_USE_SSL", "JWT_SECRET", "TOKEN_TTL_HOURS", "BCRYPT_COST",
	} {
		// t.Setenv registers the restore; Unsetenv clears it for the test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.False(t, cfg.Database.UseSSL)
	require.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, 12, cfg.Auth.BcryptCost)
	require.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USE_SSL", "true")
	t.Setenv("JWT_SECRET", "  super-secret  ")
	t.Setenv("TOKEN_TTL_HOURS", "24")
	t.Setenv("BCRYPT_COST", "10")

	cfg := LoadConfig()

	require.Equal(t, 9090, cfg.ServerPort)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.True(t, cfg.Database.UseSSL)
	require.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, 10, cfg.Auth.BcryptCost)
}
