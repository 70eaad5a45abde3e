package router

import (
	"tasker/internal/handlers/chat"
	"tasker/internal/handlers/todo"
	"tasker/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Todo todo.Handler
	Chat chat.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.Auth)

		r.DomainHandlers.Todo.Router(routerGroup)
		r.DomainHandlers.Chat.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
