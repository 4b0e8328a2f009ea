package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	b.Logger.Info("Successfully closing Logger")
	// Sync fails on stdout/stderr for some platforms, nothing to recover there.
	_ = b.Logger.Sync()

	return nil
}
