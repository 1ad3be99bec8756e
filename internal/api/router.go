package api

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	apiContext "hapbadge/internal/api/context"
	"hapbadge/internal/api/handlers"
	"hapbadge/internal/api/middleware"
)

type Dependencies struct {
	BadgeHandler   *handlers.BadgeHandler
	DisplayHandler *handlers.DisplayHandler
	HealthHandler  *handlers.HealthHandler
	MetricsHandler *handlers.MetricsHandler
}

func NewRouter(deps *Dependencies) *httprouter.Router {
	router := httprouter.New()

	// Pairing badge, fetched by browsers pointed at the accessory
	router.GET("/homekit/pairing", chain(deps.BadgeHandler.Serve, middleware.RateLimit("badge")))

	// Setup display state, driven by the pairing runtime
	router.PUT("/api/v1/setup-payload", chain(deps.DisplayHandler.Update, middleware.RateLimit("api_write")))
	router.DELETE("/api/v1/setup-payload", chain(deps.DisplayHandler.Clear, middleware.RateLimit("api_write")))

	router.GET("/health", wrap(deps.HealthHandler.Check))
	router.GET("/metrics", wrap(deps.MetricsHandler.Export))

	return router
}

// Helper function to chain middlewares
func chain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) httprouter.Handle {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return wrap(handler)
}

// Convert http.HandlerFunc to httprouter.Handle
func wrap(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		// Inject params into context
		ctx := context.WithValue(r.Context(), apiContext.Params, ps)
		handler(w, r.WithContext(ctx))
	}
}
