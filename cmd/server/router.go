package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kevinaldroniya/crudSonarCube/internal/api"
	apiMiddleware "github.com/kevinaldroniya/crudSonarCube/internal/api/middleware"
	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
)

// lookupPaths maps each lookup kind to its collection path.
var lookupPaths = map[string]string{
	domain.MakeKind.Key:      "/makes",
	domain.FeatureKind.Key:   "/car-feature",
	domain.BodyStyleKind.Key: "/car-body-style",
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewRecoverMiddleware(app.logger))

	// Set before mounting so sub-routers inherit them.
	r.NotFound(api.RouteNotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	carHandler := api.NewCarHandler(app.carService, app.logger)

	r.Route("/car", func(r chi.Router) {
		r.Get("/", carHandler.ListCars)
		r.Post("/", carHandler.CreateCar)

		r.Get("/findBySomeFields", carHandler.FindBySomeFields)
		r.Get("/findByCustomQuery", carHandler.FindByCustomQuery)
		r.Get("/findByCustomQueryV2", carHandler.FindByCustomQueryV2)

		r.Get("/{id}", carHandler.GetCar)
		r.Put("/{id}", carHandler.UpdateCar)
		r.Delete("/{id}", carHandler.DeleteCar)
		r.Patch("/{id}/status", carHandler.UpdateCarStatus)
	})

	for _, kind := range domain.LookupKinds {
		handler := api.NewLookupHandler(app.lookupServices[kind.Key], app.logger)
		r.Route(lookupPaths[kind.Key], handler.Routes)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
