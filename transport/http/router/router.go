package router

import (
	"rental/config"
	"rental/infras/metrics"
	"rental/internal/handlers/apartment"
	"rental/internal/handlers/gallery"
	"rental/internal/handlers/inquiry"
	"rental/internal/handlers/reservation"
	"rental/transport/http/middleware"

	// swagger docs
	_ "rental/docs"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Apartment   apartment.Handler
	Gallery     gallery.Handler
	Inquiry     inquiry.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers

	app     middleware.AppMiddleware
	auth    middleware.AuthRole
	metrics *metrics.Metrics
	config  *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID, chiMiddleware.RealIP, chiMiddleware.Recoverer)
	router.Use(r.app.Tracing, r.app.Metrics)

	if corsConfig := r.config.App.CORS; corsConfig.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	router.Handle("/metrics", r.metrics.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	admin := r.auth.Admin()

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.app.RateLimit())

		routerGroup.Route("/apartments", func(apartments chi.Router) {
			r.DomainHandlers.Apartment.Router(apartments, admin)
			r.DomainHandlers.Gallery.Router(apartments, admin)
			r.DomainHandlers.Reservation.AvailabilityRouter(apartments)
		})

		r.DomainHandlers.Reservation.Router(routerGroup, admin)
		r.DomainHandlers.Inquiry.Router(routerGroup, admin)
	})
}

func New(
	domainHandlers DomainHandlers,
	app middleware.AppMiddleware,
	auth middleware.AuthRole,
	metrics *metrics.Metrics,
	cfg *config.Config,
) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		auth:           auth,
		metrics:        metrics,
		config:         cfg,
	}
}
