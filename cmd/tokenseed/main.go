package main

import (
	"context"
	"log"
	"mrn-validator-service/internal/app/config"
	"mrn-validator-service/internal/app/drivers/database"
	"mrn-validator-service/internal/app/models"
	"mrn-validator-service/internal/app/services/shared/redis"
	"mrn-validator-service/internal/app/services/shared/tokenprovider"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// tokenseed writes a token record for a credential scope into redis, the way
// the external token manager does. Used for local runs and smoke tests.
func main() {
	scope := pflag.String("scope", "", "credential scope, defaults to lookup.token_scope")
	token := pflag.String("token", "", "bearer token to store")
	endpoint := pflag.String("endpoint", "", "demographics batch endpoint URL")
	expiresIn := pflag.Duration("expires-in", time.Hour, "token lifetime, 0 for no expiry")
	revoke := pflag.Bool("revoke", false, "delete the stored token for the scope instead of writing one")
	pflag.Parse()

	if !*revoke && (*token == "" || *endpoint == "") {
		pflag.Usage()
		log.Fatal("--token and --endpoint are required unless --revoke is set")
	}

	internalConfig, driverConfig, err := config.Load(".", "./configs")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if *scope == "" {
		*scope = internalConfig.Lookup.TokenScope
	}

	ctx := context.Background()
	client, err := database.NewRedisClient(ctx, driverConfig)
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer client.Close()

	zapLogger := zap.NewExample()
	defer zapLogger.Sync()

	provider := tokenprovider.NewRedisTokenProvider(
		redis.NewRedisRepository(client),
		internalConfig.TokenProvider.KeyPrefix,
		internalConfig.TokenProvider.ExpiryLeeway(),
		zapLogger,
	)

	if *revoke {
		if err := provider.RevokeToken(ctx, *scope); err != nil {
			log.Fatalf("Error revoking token: %v", err)
		}
		zapLogger.Info("token revoked", zap.String("scope", *scope))
		return
	}

	record := models.TokenRecord{Token: *token, Endpoint: *endpoint}
	if *expiresIn > 0 {
		record.ExpiresAt = time.Now().Add(*expiresIn)
	}
	if err := provider.StoreToken(ctx, *scope, record, *expiresIn); err != nil {
		log.Fatalf("Error storing token: %v", err)
	}

	zapLogger.Info("token stored", zap.String("scope", *scope), zap.Time("expires_at", record.ExpiresAt))
}
