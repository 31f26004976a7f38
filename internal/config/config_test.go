package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "STORE_BACKEND", "ACTIVITY_BACKEND", "NOTIFY_TRANSPORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"AWS_REGION", "ACTIVITY_TABLE", "REDIS_DB", "REDIS_NOTIFY_STREAM", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, StorePostgres, cfg.StoreBackend)
	assert.Equal(t, ActivityDynamoDB, cfg.ActivityBackend)
	assert.Equal(t, NotifyNone, cfg.NotifyTransport)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "us-east-1", cfg.DynamoDB.Region)
	assert.Equal(t, "activity_log", cfg.DynamoDB.ActivityTable)
	assert.Equal(t, "fieldops:notifications", cfg.Redis.Stream)
	assert.False(t, cfg.PaymentGatewayMock)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_BACKEND", "MEMORY")
	t.Setenv("ACTIVITY_BACKEND", "memory")
	t.Setenv("NOTIFY_TRANSPORT", "redis")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("MERCADOPAGO_MOCK", "on")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, ActivityMemory, cfg.ActivityBackend)
	assert.Equal(t, NotifyRedis, cfg.NotifyTransport)
	assert.Equal(t, "host=db port=6543 user=postgres password=postgres dbname=fieldops sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.PaymentGatewayMock)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingJWTSecret)
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DB_PORT", "five")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_PORT")
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("STORE_BACKEND", "mongo")
		_, err := Load()
		assert.ErrorContains(t, err, "STORE_BACKEND")
	})
}
