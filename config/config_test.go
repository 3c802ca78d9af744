package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_SERVER", "sql.internal")
	t.Setenv("DB_NAME", "complaints")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_PORT", "1533")
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
	t.Setenv("PORT", "5000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.HTTPServer.Port)
	assert.Equal(t, "sqlserver", cfg.Database.Driver)
	assert.Equal(t, "sql.internal", cfg.Database.Host)
	assert.Equal(t, 1533, cfg.Database.Port)
	assert.Equal(t, "complaints", cfg.Database.Name)
	assert.Equal(t, "app", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "access", cfg.JWT.AccessSecret)
	assert.Equal(t, "refresh", cfg.JWT.RefreshSecret)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Cookie.MaxAge)
	assert.True(t, cfg.Cookie.Secure)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoadValidation(t *testing.T) {
	t.Run("Missing Secrets", func(t *testing.T) {
		t.Setenv("DB_NAME", "complaints")
		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingJWTSecrets)
	})

	t.Run("Shared Secret", func(t *testing.T) {
		t.Setenv("DB_NAME", "complaints")
		t.Setenv("JWT_ACCESS_SECRET", "same")
		t.Setenv("JWT_REFRESH_SECRET", "same")
		_, err := Load()
		assert.ErrorIs(t, err, ErrSharedJWTSecret)
	})

	t.Run("Missing Database", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_SECRET", "access")
		t.Setenv("JWT_REFRESH_SECRET", "refresh")
		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingDatabase)
	})
}
