//go:build wireinject
// +build wireinject

package di

import (
	"petcare/config"
	"petcare/infras/jwt"
	"petcare/infras/kafka"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/infras/redis"
	"petcare/infras/s3"
	"petcare/permissions"
	"petcare/shared/cache"
	"petcare/transport/http"
	"petcare/transport/http/middleware"
	"petcare/transport/http/router"
	kafkaTransport "petcare/transport/kafka"

	"github.com/google/wire"

	appointmentRepository "petcare/internal/domains/appointment/repository"
	appointmentService "petcare/internal/domains/appointment/service"
	authService "petcare/internal/domains/auth/service"
	payrollRepository "petcare/internal/domains/payroll/repository"
	payrollService "petcare/internal/domains/payroll/service"
	petRepository "petcare/internal/domains/pet/repository"
	pricingService "petcare/internal/domains/pricing/service"
	userRepository "petcare/internal/domains/user/repository"
	userService "petcare/internal/domains/user/service"
	appointmentHandler "petcare/internal/handlers/appointment"
	authHandler "petcare/internal/handlers/auth"
	payrollHandler "petcare/internal/handlers/payroll"
	pricingHandler "petcare/internal/handlers/pricing"
	userHandler "petcare/internal/handlers/user"
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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var appointmentDomain = wire.NewSet(
	petRepository.New,
	appointmentRepository.New,
	appointmentService.New,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var payrollDomain = wire.NewSet(
	payrollRepository.New,
	payrollService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	appointmentDomain,
	pricingDomain,
	payrollDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	appointmentHandler.New,
	pricingHandler.New,
	payrollHandler.New,
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

func InitializeWorker() *kafkaTransport.Consumer {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		kafka.New,
		sharedHelpers,
		payrollDomain,
		kafkaTransport.New,
	)

	return &kafkaTransport.Consumer{}
}
