//go:build wireinject
// +build wireinject

package di

import (
	"tasker/config"
	"tasker/infras/openai"
	"tasker/infras/otel"
	"tasker/infras/postgres"
	"tasker/infras/redis"
	chatHandler "tasker/internal/handlers/chat"
	todoHandler "tasker/internal/handlers/todo"
	"tasker/shared/cache"
	"tasker/transport/http"
	"tasker/transport/http/middleware"
	"tasker/transport/http/router"

	agentService "tasker/internal/domains/agent/service"
	"tasker/internal/domains/agent/tool"
	chatRepository "tasker/internal/domains/chat/repository"
	chatService "tasker/internal/domains/chat/service"
	sessionRepository "tasker/internal/domains/session/repository"
	sessionService "tasker/internal/domains/session/service"
	todoRepository "tasker/internal/domains/todo/repository"
	todoService "tasker/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	openai.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var agentDomain = wire.NewSet(
	tool.NewExecutor,
	agentService.New,
)

var chatDomain = wire.NewSet(
	chatRepository.NewConversation,
	chatRepository.NewMessage,
	chatService.New,
)

var domains = wire.NewSet(
	todoDomain,
	sessionDomain,
	agentDomain,
	chatDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	chatHandler.New,
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
