package tokenprovider

import (
	"context"
	"fmt"
	"mrn-validator-service/internal/app/contracts"
	"mrn-validator-service/internal/app/models"
	"mrn-validator-service/internal/pkg/constvars"
	"mrn-validator-service/internal/pkg/exceptions"
	"mrn-validator-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// RedisTokenProvider reads tokens that an external token manager keeps
// refreshed under <keyPrefix>:<scope>.
type RedisTokenProvider struct {
	Redis     contracts.RedisRepository
	KeyPrefix string
	Leeway    time.Duration
	Log       *zap.Logger
	now       func() time.Time
}

func NewRedisTokenProvider(redisRepository contracts.RedisRepository, keyPrefix string, leeway time.Duration, logger *zap.Logger) *RedisTokenProvider {
	if keyPrefix == "" {
		keyPrefix = constvars.DefaultTokenKeyPrefix
	}
	return &RedisTokenProvider{
		Redis:     redisRepository,
		KeyPrefix: keyPrefix,
		Leeway:    leeway,
		Log:       logger,
		now:       time.Now,
	}
}

func (p *RedisTokenProvider) key(scope string) string {
	return fmt.Sprintf("%s:%s", p.KeyPrefix, scope)
}

// FindValidToken returns the stored token for scope when neither the record
// expiry nor the JWT exp claim (for JWT tokens) has passed.
func (p *RedisTokenProvider) FindValidToken(ctx context.Context, scope string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("RedisTokenProvider.FindValidToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScopeKey, scope),
	)

	record, err := p.loadRecord(ctx, scope)
	if err != nil {
		return "", err
	}
	if record.Token == "" {
		p.Log.Warn("RedisTokenProvider.FindValidToken record has empty token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScopeKey, scope),
		)
		return "", exceptions.ErrTokenUnavailable(nil, scope)
	}

	now := p.now()
	if record.ExpiredAt(now, p.Leeway) {
		p.Log.Warn("RedisTokenProvider.FindValidToken record expired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScopeKey, scope),
			zap.Time("expires_at", record.ExpiresAt),
		)
		return "", exceptions.ErrTokenExpired(scope)
	}
	if exp, ok := utils.ParseJWTExpiry(record.Token); ok && !now.Add(p.Leeway).Before(exp) {
		p.Log.Warn("RedisTokenProvider.FindValidToken JWT exp passed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScopeKey, scope),
			zap.Time("exp", exp),
		)
		return "", exceptions.ErrTokenExpired(scope)
	}

	p.Log.Info("RedisTokenProvider.FindValidToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScopeKey, scope),
	)
	return record.Token, nil
}

func (p *RedisTokenProvider) GetAPIEndpoint(ctx context.Context, scope string) (string, error) {
	record, err := p.loadRecord(ctx, scope)
	if err != nil {
		return "", err
	}
	if record.Endpoint == "" {
		p.Log.Warn("RedisTokenProvider.GetAPIEndpoint record has empty endpoint",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingScopeKey, scope),
		)
		return "", exceptions.ErrTokenUnavailable(nil, scope)
	}
	return record.Endpoint, nil
}

// StoreToken writes record for scope. A zero ttl keeps the key without expiry.
func (p *RedisTokenProvider) StoreToken(ctx context.Context, scope string, record models.TokenRecord, ttl time.Duration) error {
	if err := p.Redis.Set(ctx, p.key(scope), record, ttl); err != nil {
		p.Log.Error("RedisTokenProvider.StoreToken error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingScopeKey, scope),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (p *RedisTokenProvider) RevokeToken(ctx context.Context, scope string) error {
	if err := p.Redis.Delete(ctx, p.key(scope)); err != nil {
		p.Log.Error("RedisTokenProvider.RevokeToken error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingScopeKey, scope),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (p *RedisTokenProvider) loadRecord(ctx context.Context, scope string) (*models.TokenRecord, error) {
	raw, err := p.Redis.Get(ctx, p.key(scope))
	if err != nil {
		p.Log.Error("RedisTokenProvider.loadRecord error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingScopeKey, scope),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenUnavailable(err, scope)
	}
	if raw == "" {
		p.Log.Warn("RedisTokenProvider.loadRecord no record",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingScopeKey, scope),
		)
		return nil, exceptions.ErrTokenUnavailable(nil, scope)
	}

	var record models.TokenRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		p.Log.Error("RedisTokenProvider.loadRecord cannot decode record",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingScopeKey, scope),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenUnavailable(err, scope)
	}
	return &record, nil
}
