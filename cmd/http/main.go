package main

import (
	"context"
	"fmt"
	"log"
	"mrn-validator-service/internal/app/config"
	"mrn-validator-service/internal/app/contracts"
	"mrn-validator-service/internal/app/delivery/http/controllers"
	"mrn-validator-service/internal/app/delivery/http/middlewares"
	"mrn-validator-service/internal/app/delivery/http/routers"
	"mrn-validator-service/internal/app/drivers/database"
	"mrn-validator-service/internal/app/drivers/logger"
	"mrn-validator-service/internal/app/models"
	"mrn-validator-service/internal/app/services/core/lookup"
	"mrn-validator-service/internal/app/services/demographics"
	"mrn-validator-service/internal/app/services/shared/redis"
	"mrn-validator-service/internal/app/services/shared/secretgate"
	"mrn-validator-service/internal/app/services/shared/tokenprovider"
	"mrn-validator-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	internalConfig, driverConfig, err := config.Load(".", "./configs")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	zapLogger.Info("Starting mrn-validator-service",
		zap.String("build_version", Version),
		zap.String("build_tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.TokenProvider.Driver == constvars.TokenProviderDriverRedis {
		bootstrap.Redis, err = database.NewRedisClient(context.Background(), driverConfig)
		if err != nil {
			zapLogger.Fatal("Error connecting to Redis", zap.Error(err))
		}
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), internalConfig.App.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Redis
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Token provider
	tokenProvider, err := tokenprovider.NewTokenProvider(bootstrap.InternalConfig.TokenProvider, redisRepository, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Lookup
	lookupConfig := bootstrap.InternalConfig.Lookup
	credentialGate := secretgate.NewSecretGate(lookupConfig.SharedSecret, bootstrap.Logger)
	demographicsClient := demographics.NewDemographicsClient(lookupConfig.RequestTimeout(), lookupConfig.DownstreamRateLimitPerSecond, bootstrap.Logger)
	lookupUsecase := lookup.NewLookupUsecase(
		credentialGate,
		tokenProvider,
		demographicsClient,
		models.DefaultFieldMapping(),
		lookupConfig.TokenScope,
		bootstrap.Logger,
	)
	lookupController := controllers.NewLookupController(bootstrap.Logger, lookupUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, lookupController)
	return nil
}
