package database

import (
	"context"
	"fmt"
	"mrn-validator-service/internal/app/config"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", rdb.Options().Addr, err)
	}

	return rdb, nil
}
