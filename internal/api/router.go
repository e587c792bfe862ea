// filepath: internal/api/router.go
package api

import (
	"context"
	"net/http"

	"appinfo/internal/api/handlers"
	"appinfo/internal/api/middleware"
	"appinfo/internal/config"

	// Register the generated Swagger spec
	_ "appinfo/docs"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the router and wraps it in the middleware chain.
// ctx bounds background work started for the router, such as the rate limiter sweeper.
func SetupRouter(ctx context.Context, h *handlers.Handlers, cfg *config.Config, log *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	// Probes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")

	// Public Endpoints
	r.HandleFunc("/api/v1/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Middleware, innermost first. mux only runs r.Use middleware on matched
	// routes, so the chain wraps the whole router to cover 404/405 as well.
	var handler http.Handler = r
	if cfg.Server.RateLimit.Enabled {
		handler = middleware.NewRateLimiter(ctx, cfg.Server.RateLimit).Middleware(handler)
	}
	handler = middleware.Recoverer(log)(handler)
	handler = middleware.AccessLog(log)(handler)
	return middleware.RequestID(handler)
}
