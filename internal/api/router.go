package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/newsletter/pkg/httpserver"
)

// Deps collects everything the router mounts. Readiness is optional; when
// present it backs the health endpoint (nil keeps it a plain liveness
// probe).
type Deps struct {
	Subscriptions SubscriptionService
	Newsletters   NewsletterService
	Log           *slog.Logger
	Readiness     []func(context.Context) error
}

// NewRouter builds the service's full HTTP surface.
func NewRouter(deps Deps) http.Handler {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	h := newHandlers(deps.Subscriptions, deps.Newsletters, deps.Log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health_check", httpserver.HealthCheckHandler(context.Background(), deps.Log, deps.Readiness...))

	r.Post("/subscriptions", h.subscribe)
	r.Get("/subscriptions/confirm", h.confirmSubscription)
	r.Post("/newsletters", h.publishNewsletter)

	return r
}
