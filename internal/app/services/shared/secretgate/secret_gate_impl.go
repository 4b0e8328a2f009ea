package secretgate

import (
	"context"
	"crypto/subtle"
	"mrn-validator-service/internal/app/contracts"
	"mrn-validator-service/internal/pkg/constvars"
	"mrn-validator-service/internal/pkg/exceptions"
	"mrn-validator-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type secretGate struct {
	ConfiguredSecret string
	Log              *zap.Logger
}

// NewSecretGate returns a CredentialGate comparing callers against configuredSecret.
func NewSecretGate(configuredSecret string, logger *zap.Logger) contracts.CredentialGate {
	return &secretGate{
		ConfiguredSecret: configuredSecret,
		Log:              logger,
	}
}

// Authenticate fails with a 401 error when providedSecret is empty and a 403
// error when it differs from the configured secret. Only lengths are logged.
func (g *secretGate) Authenticate(ctx context.Context, providedSecret string) error {
	requestID := utils.GetRequestID(ctx)

	if providedSecret == "" {
		g.Log.Warn("secretGate.Authenticate shared secret missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrSecretMissing()
	}

	if subtle.ConstantTimeCompare([]byte(providedSecret), []byte(g.ConfiguredSecret)) != 1 {
		g.Log.Warn("secretGate.Authenticate shared secret mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSecretLengthKey, len(providedSecret)),
			zap.Int(constvars.LoggingExpectedLengthKey, len(g.ConfiguredSecret)),
		)
		return exceptions.ErrSecretMismatch()
	}

	g.Log.Debug("secretGate.Authenticate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
