//go:build wireinject
// +build wireinject

package di

import (
	"rental/config"
	"rental/infras/jwt"
	"rental/infras/kafka"
	"rental/infras/metrics"
	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/infras/redis"
	"rental/infras/s3"
	apartmentHandler "rental/internal/handlers/apartment"
	galleryHandler "rental/internal/handlers/gallery"
	inquiryHandler "rental/internal/handlers/inquiry"
	reservationHandler "rental/internal/handlers/reservation"
	"rental/permissions"
	"rental/shared/cache"
	"rental/transport/http"
	"rental/transport/http/middleware"
	"rental/transport/http/router"

	apartmentRepository "rental/internal/domains/apartment/repository"
	apartmentService "rental/internal/domains/apartment/service"
	galleryRepository "rental/internal/domains/gallery/repository"
	galleryService "rental/internal/domains/gallery/service"
	inquiryRepository "rental/internal/domains/inquiry/repository"
	inquiryService "rental/internal/domains/inquiry/service"
	notificationService "rental/internal/domains/notification/service"
	reservationRepository "rental/internal/domains/reservation/repository"
	reservationService "rental/internal/domains/reservation/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var apartmentDomain = wire.NewSet(
	apartmentRepository.New,
	apartmentService.New,
	wire.Bind(new(reservationService.Listings), new(apartmentService.Apartment)),
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
	wire.Bind(new(apartmentService.Images), new(galleryService.Gallery)),
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
	wire.Bind(new(inquiryService.Notifier), new(notificationService.Notifier)),
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
	notificationService.New,
)

var domains = wire.NewSet(
	apartmentDomain,
	galleryDomain,
	inquiryDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	apartmentHandler.New,
	galleryHandler.New,
	inquiryHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		provideResources,
		http.New,
	)

	return &http.HTTP{}
}
