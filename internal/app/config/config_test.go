package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithEnvOverrides(t *testing.T) {
	t.Setenv("LOOKUP_SHARED_SECRET", "S")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_HOST", "redis.internal")

	internalConfig, driverConfig, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "S", internalConfig.Lookup.SharedSecret)
	assert.Equal(t, "9090", internalConfig.App.Port)
	assert.Equal(t, "api", internalConfig.App.EndpointPrefix)
	assert.Equal(t, "v1", internalConfig.App.Version)
	assert.Equal(t, "id", internalConfig.Lookup.TokenScope)
	assert.Equal(t, 30*time.Second, internalConfig.Lookup.RequestTimeout())
	assert.Equal(t, "redis", internalConfig.TokenProvider.Driver)
	assert.Equal(t, "token_manager", internalConfig.TokenProvider.KeyPrefix)
	assert.Equal(t, int64(1<<20), internalConfig.App.RequestBodyLimitInBytes())

	assert.Equal(t, "redis.internal", driverConfig.Redis.Host)
	assert.Equal(t, "6379", driverConfig.Redis.Port)
	assert.Equal(t, "info", driverConfig.Logger.Level)
}

func TestLoad_MissingSharedSecret(t *testing.T) {
	t.Setenv("LOOKUP_SHARED_SECRET", "")

	_, _, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSharedSecretRequired)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
lookup:
  shared_secret: from-file
  token_scope: hospital
token_provider:
  driver: static
  static_token: abc
  static_endpoint: https://demographics.example.org/batch
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	internalConfig, _, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-file", internalConfig.Lookup.SharedSecret)
	assert.Equal(t, "hospital", internalConfig.Lookup.TokenScope)
	assert.Equal(t, "static", internalConfig.TokenProvider.Driver)
	assert.Equal(t, "abc", internalConfig.TokenProvider.StaticToken)
}

func TestInternalConfig_Validate(t *testing.T) {
	valid := func() *InternalConfig {
		return &InternalConfig{
			App:           App{RequestBodyLimitInMegabyte: 1},
			Lookup:        AppLookup{SharedSecret: "S", RequestTimeoutInSeconds: 5},
			TokenProvider: TokenProvider{Driver: "static"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *InternalConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *InternalConfig) {}},
		{name: "empty secret", mutate: func(c *InternalConfig) { c.Lookup.SharedSecret = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *InternalConfig) { c.Lookup.RequestTimeoutInSeconds = 0 }, wantErr: true},
		{name: "negative rate limit", mutate: func(c *InternalConfig) { c.Lookup.DownstreamRateLimitPerSecond = -1 }, wantErr: true},
		{name: "unknown driver", mutate: func(c *InternalConfig) { c.TokenProvider.Driver = "vault" }, wantErr: true},
		{name: "zero body limit", mutate: func(c *InternalConfig) { c.App.RequestBodyLimitInMegabyte = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
