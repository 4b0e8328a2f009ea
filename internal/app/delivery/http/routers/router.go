package routers

import (
	"fmt"
	"mrn-validator-service/internal/app/config"
	"mrn-validator-service/internal/app/delivery/http/controllers"
	"mrn-validator-service/internal/app/delivery/http/middlewares"
	"mrn-validator-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	lookupController *controllers.LookupController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Get(fmt.Sprintf("/%s", constvars.ResourceHealthz), healthz)
	router.Handle(fmt.Sprintf("/%s", constvars.ResourceMetrics), promhttp.Handler())

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route(fmt.Sprintf("/%s", constvars.ResourceMrnLookup), func(r chi.Router) {
				attachLookupRoutes(r, middlewares, lookupController)
			})
		})
	})
}
