package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "localhost", cfg.DBConfig.Host)
	assert.Equal(t, "5432", cfg.DBConfig.Port)
	assert.Equal(t, "disable", cfg.DBConfig.SSLMode)
	assert.Equal(t, 15*time.Minute, cfg.JWTConfig.AccessTTL)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaConfig.Brokers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBConfig.Host)
	assert.Equal(t, "6543", cfg.DBConfig.Port)
	assert.Contains(t, cfg.DBConfig.DSN(), "port=6543")
	assert.Contains(t, cfg.DBConfig.DatabaseURL(), "db.internal:6543")
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaConfig.Brokers)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
