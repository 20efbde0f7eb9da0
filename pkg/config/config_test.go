package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "db_logistica_social", cfg.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Mongo.OperationTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOGISOCIAL_SERVER_PORT", "8088")
	t.Setenv("LOGISOCIAL_MONGO_URI", "mongodb://db:27017")
	t.Setenv("LOGISOCIAL_MONGO_OPERATION_TIMEOUT", "750ms")
	t.Setenv("LOGISOCIAL_SERVER_CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LOGISOCIAL_RATELIMIT_RPS", "0")
	t.Setenv("LOGISOCIAL_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.Server.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, 750*time.Millisecond, cfg.Mongo.OperationTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins())
	assert.Zero(t, cfg.RateLimit.RPS)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("LOGISOCIAL_ENVIRONMENT", "moon")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("LOGISOCIAL_SERVER_READ_TIMEOUT"))
	assert.Equal(t, "environment", envKey("LOGISOCIAL_ENVIRONMENT"))
	assert.Equal(t, "log.level", envKey("LOGISOCIAL_LOG_LEVEL"))
}
