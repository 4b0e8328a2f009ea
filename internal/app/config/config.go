package config

import (
	"fmt"
	"mrn-validator-service/internal/pkg/constvars"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

// Load reads configuration from an optional config.yaml under configPaths and
// from the environment (APP_PORT, LOOKUP_SHARED_SECRET, REDIS_HOST, ...).
func Load(configPaths ...string) (*InternalConfig, *DriverConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if len(configPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var internalConfig InternalConfig
	if err := v.Unmarshal(&internalConfig); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal internal config: %w", err)
	}

	var driverConfig DriverConfig
	if err := v.Unmarshal(&driverConfig); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal driver config: %w", err)
	}

	if err := internalConfig.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &internalConfig, &driverConfig, nil
}

// Every key needs a default so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.version", "v1")
	v.SetDefault("app.endpoint_prefix", "api")
	v.SetDefault("app.max_requests", 100)
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)
	v.SetDefault("app.request_body_limit_in_megabyte", 1)

	v.SetDefault("lookup.shared_secret", "")
	v.SetDefault("lookup.token_scope", constvars.DefaultTokenScope)
	v.SetDefault("lookup.request_timeout_in_seconds", 30)
	v.SetDefault("lookup.downstream_rate_limit_per_second", 0)

	v.SetDefault("token_provider.driver", constvars.TokenProviderDriverRedis)
	v.SetDefault("token_provider.key_prefix", constvars.DefaultTokenKeyPrefix)
	v.SetDefault("token_provider.static_token", "")
	v.SetDefault("token_provider.static_endpoint", "")
	v.SetDefault("token_provider.expiry_leeway_in_seconds", 30)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_file_name", "logger.log")
	v.SetDefault("logger.output_error_file_name", "logger_error.log")
}
