package tokenprovider

import (
	"context"
	"mrn-validator-service/internal/pkg/constvars"
	"mrn-validator-service/internal/pkg/exceptions"
	"mrn-validator-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// StaticTokenProvider serves a fixed token and endpoint from configuration.
type StaticTokenProvider struct {
	Token    string
	Endpoint string
	Log      *zap.Logger
}

func NewStaticTokenProvider(token, endpoint string, logger *zap.Logger) *StaticTokenProvider {
	return &StaticTokenProvider{
		Token:    token,
		Endpoint: endpoint,
		Log:      logger,
	}
}

func (p *StaticTokenProvider) FindValidToken(ctx context.Context, scope string) (string, error) {
	if p.Token == "" {
		p.Log.Warn("StaticTokenProvider.FindValidToken no token configured",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingScopeKey, scope),
		)
		return "", exceptions.ErrTokenUnavailable(nil, scope)
	}
	return p.Token, nil
}

func (p *StaticTokenProvider) GetAPIEndpoint(ctx context.Context, scope string) (string, error) {
	if p.Endpoint == "" {
		p.Log.Warn("StaticTokenProvider.GetAPIEndpoint no endpoint configured",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingScopeKey, scope),
		)
		return "", exceptions.ErrTokenUnavailable(nil, scope)
	}
	return p.Endpoint, nil
}
