package routers

import (
	"mrn-validator-service/internal/app/delivery/http/controllers"
	"mrn-validator-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachLookupRoutes(router chi.Router, middlewares *middlewares.Middlewares, lookupController *controllers.LookupController) {
	router.With(middlewares.BodyBuffer).Post("/", lookupController.Lookup)
}
