package tokenprovider

import (
	"fmt"
	"mrn-validator-service/internal/app/config"
	"mrn-validator-service/internal/app/contracts"
	"mrn-validator-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// NewTokenProvider builds the provider selected by cfg.Driver. redisRepository
// may be nil for the static driver.
func NewTokenProvider(cfg config.TokenProvider, redisRepository contracts.RedisRepository, logger *zap.Logger) (contracts.TokenProvider, error) {
	switch cfg.Driver {
	case constvars.TokenProviderDriverRedis:
		if redisRepository == nil {
			return nil, fmt.Errorf("token provider driver %q requires a redis repository", cfg.Driver)
		}
		return NewRedisTokenProvider(redisRepository, cfg.KeyPrefix, cfg.ExpiryLeeway(), logger), nil
	case constvars.TokenProviderDriverStatic:
		return NewStaticTokenProvider(cfg.StaticToken, cfg.StaticEndpoint, logger), nil
	default:
		return nil, fmt.Errorf("unknown token provider driver %q", cfg.Driver)
	}
}
