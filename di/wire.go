//go:build wireinject
// +build wireinject

package di

import (
	"quickcourt/config"
	"quickcourt/infras/jwt"
	"quickcourt/infras/otel"
	"quickcourt/internal/state"
	"quickcourt/permissions"
	"quickcourt/shared/storage"
	"quickcourt/transport/http"
	"quickcourt/transport/http/middleware"
	"quickcourt/transport/http/router"

	bookingRepository "quickcourt/internal/domains/booking/repository"
	bookingService "quickcourt/internal/domains/booking/service"
	catalogRepository "quickcourt/internal/domains/catalog/repository"
	catalogService "quickcourt/internal/domains/catalog/service"
	"quickcourt/internal/domains/feed/source"
	notificationService "quickcourt/internal/domains/notification/service"
	profileRepository "quickcourt/internal/domains/profile/repository"
	profileService "quickcourt/internal/domains/profile/service"
	reviewRepository "quickcourt/internal/domains/review/repository"
	reviewService "quickcourt/internal/domains/review/service"

	availabilityHandler "quickcourt/internal/handlers/availability"
	bookingHandler "quickcourt/internal/handlers/booking"
	catalogHandler "quickcourt/internal/handlers/catalog"
	feedHandler "quickcourt/internal/handlers/feed"
	notificationHandler "quickcourt/internal/handlers/notification"
	profileHandler "quickcourt/internal/handlers/profile"
	reviewHandler "quickcourt/internal/handlers/review"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	jwt.New,
	storage.New,
	state.NewFromEmbedded,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	provideFlowRepository,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var profileDomain = wire.NewSet(
	profileRepository.New,
	profileService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var feedDomain = wire.NewSet(
	source.New,
	provideRefresher,
	providePoller,
	providePush,
)

var domains = wire.NewSet(
	catalogDomain,
	bookingDomain,
	reviewDomain,
	profileDomain,
	notificationDomain,
	feedDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	notificationHandler.New,
	feedHandler.New,
	profileHandler.New,
	router.New,
)

func InitializeRuntime() (*Runtime, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
		wire.Struct(new(Runtime), "*"),
	)

	return nil, nil, nil
}
