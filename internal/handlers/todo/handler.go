package todo

import (
	"net/http"

	"tasker/infras/otel"
	"tasker/internal/domains/todo/model/dto"
	"tasker/internal/domains/todo/service"
	"tasker/shared"
	"tasker/shared/constant"
	"tasker/shared/validator"
	"tasker/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Get("/search", handler.SearchTodos)
		routerGroup.Delete("/completed", handler.DeleteCompletedTodos)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// CreateTodo creates a new todo owned by the authenticated user.
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	todo, err := handler.service.Create(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo created successfully by user " + userID)

	response.WithJSON(writer, http.StatusCreated, todo)
}

// GetTodos lists the authenticated user's todos, newest first. Completed
// todos are included unless include_completed=false.
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	includeCompleted := true
	if parsed := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamIncludeCompleted)); parsed != nil {
		includeCompleted = *parsed
	}

	todos, err := handler.service.GetAll(ctx, userID, includeCompleted)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(w, http.StatusOK, todos)
}

// SearchTodos finds todos whose title contains the query, case-insensitively.
func (handler *Handler) SearchTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchTodos")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	query := r.URL.Query().Get(constant.RequestParamQuery)

	todos, err := handler.service.Search(ctx, userID, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search todos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todos searched successfully")

	response.WithJSON(w, http.StatusOK, todos)
}

// GetTodoByID retrieves one of the authenticated user's todos by its ID.
func (handler *Handler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	todo, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todo by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo retrieved successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// UpdateTodo updates the title or completion state of a todo.
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Update(ctx, req, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, todo)
}

// DeleteTodo deletes a todo by its ID.
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Todo deleted successfully")
}

// DeleteCompletedTodos removes every completed todo the user owns.
func (handler *Handler) DeleteCompletedTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCompletedTodos")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	deleted, err := handler.service.DeleteAllCompleted(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete completed todos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Completed todos deleted successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, dto.DeleteCompletedResponse{DeletedCount: deleted})
}
