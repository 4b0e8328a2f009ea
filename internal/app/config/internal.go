package config

import (
	"errors"
	"fmt"
	"mrn-validator-service/internal/pkg/constvars"
	"time"
)

type InternalConfig struct {
	App           App           `mapstructure:"app"`
	Lookup        AppLookup     `mapstructure:"lookup"`
	TokenProvider TokenProvider `mapstructure:"token_provider"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

type AppLookup struct {
	SharedSecret                 string `mapstructure:"shared_secret"`
	TokenScope                   string `mapstructure:"token_scope"`
	RequestTimeoutInSeconds      int    `mapstructure:"request_timeout_in_seconds"`
	DownstreamRateLimitPerSecond int    `mapstructure:"downstream_rate_limit_per_second"`
}

type TokenProvider struct {
	Driver                string `mapstructure:"driver"`
	KeyPrefix             string `mapstructure:"key_prefix"`
	StaticToken           string `mapstructure:"static_token"`
	StaticEndpoint        string `mapstructure:"static_endpoint"`
	ExpiryLeewayInSeconds int    `mapstructure:"expiry_leeway_in_seconds"`
}

var (
	ErrSharedSecretRequired  = errors.New("lookup.shared_secret is required")
	ErrInvalidRequestTimeout = errors.New("lookup.request_timeout_in_seconds must be positive")
)

func (c *InternalConfig) Validate() error {
	if c.Lookup.SharedSecret == "" {
		return ErrSharedSecretRequired
	}
	if c.Lookup.RequestTimeoutInSeconds <= 0 {
		return ErrInvalidRequestTimeout
	}
	if c.Lookup.DownstreamRateLimitPerSecond < 0 {
		return fmt.Errorf("lookup.downstream_rate_limit_per_second must not be negative, got %d", c.Lookup.DownstreamRateLimitPerSecond)
	}
	switch c.TokenProvider.Driver {
	case constvars.TokenProviderDriverRedis, constvars.TokenProviderDriverStatic:
	default:
		return fmt.Errorf("token_provider.driver %q is not one of [redis, static]", c.TokenProvider.Driver)
	}
	if c.App.RequestBodyLimitInMegabyte <= 0 {
		return fmt.Errorf("app.request_body_limit_in_megabyte must be positive, got %d", c.App.RequestBodyLimitInMegabyte)
	}
	return nil
}

func (l AppLookup) RequestTimeout() time.Duration {
	return time.Duration(l.RequestTimeoutInSeconds) * time.Second
}

func (t TokenProvider) ExpiryLeeway() time.Duration {
	return time.Duration(t.ExpiryLeewayInSeconds) * time.Second
}

func (a App) ShutdownTimeout() time.Duration {
	return time.Duration(a.ShutdownTimeoutInSeconds) * time.Second
}

func (a App) RequestBodyLimitInBytes() int64 {
	return int64(a.RequestBodyLimitInMegabyte) << 20
}
