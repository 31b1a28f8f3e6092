//go:build wireinject
// +build wireinject

package di

import (
	"carre/config"
	"carre/infras/jwt"
	"carre/infras/llm"
	"carre/infras/mailer"
	"carre/infras/otel"
	"carre/infras/postgres"
	"carre/infras/redis"
	"carre/infras/s3"
	"carre/permissions"
	"carre/shared/cache"
	"carre/transport/http"
	"carre/transport/http/middleware"
	"carre/transport/http/router"

	"github.com/google/wire"

	authService "carre/internal/domains/auth/service"
	eventRepository "carre/internal/domains/event/repository"
	eventService "carre/internal/domains/event/service"
	invoiceService "carre/internal/domains/invoice/service"
	menuImporter "carre/internal/domains/menu/importer"
	menuRepository "carre/internal/domains/menu/repository"
	menuService "carre/internal/domains/menu/service"
	orderRepository "carre/internal/domains/order/repository"
	orderService "carre/internal/domains/order/service"
	paymentRepository "carre/internal/domains/payment/repository"
	paymentService "carre/internal/domains/payment/service"
	tableRepository "carre/internal/domains/table/repository"
	tableService "carre/internal/domains/table/service"
	userRepository "carre/internal/domains/user/repository"
	venueRepository "carre/internal/domains/venue/repository"
	venueService "carre/internal/domains/venue/service"

	authHandler "carre/internal/handlers/auth"
	eventHandler "carre/internal/handlers/event"
	healthHandler "carre/internal/handlers/health"
	invoiceHandler "carre/internal/handlers/invoice"
	menuHandler "carre/internal/handlers/menu"
	orderHandler "carre/internal/handlers/order"
	paymentHandler "carre/internal/handlers/payment"
	tableHandler "carre/internal/handlers/table"
	venueHandler "carre/internal/handlers/venue"
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
	s3.New,
	mailer.New,
	llm.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventRepository.NewEventDay,
	eventService.New,
)

var venueDomain = wire.NewSet(
	venueRepository.New,
	venueRepository.NewTableLayout,
	venueService.New,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuImporter.New,
	menuService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderRepository.NewOrderItem,
	orderService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceService.New,
)

var domains = wire.NewSet(
	authDomain,
	eventDomain,
	venueDomain,
	tableDomain,
	menuDomain,
	orderDomain,
	paymentDomain,
	invoiceDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	eventHandler.New,
	venueHandler.New,
	tableHandler.New,
	menuHandler.New,
	orderHandler.New,
	paymentHandler.New,
	invoiceHandler.New,
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
		http.New,
	)

	return &http.HTTP{}
}
