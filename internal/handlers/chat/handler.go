package chat

import (
	"net/http"

	"tasker/infras/otel"
	"tasker/internal/domains/chat/model/dto"
	"tasker/internal/domains/chat/service"
	"tasker/shared/constant"
	"tasker/shared/validator"
	"tasker/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Chat
	otel    otel.Otel
}

func New(service service.Chat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/conversations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetConversations)
		routerGroup.Post("/", handler.CreateConversation)
		routerGroup.Get("/{id}", handler.GetConversationByID)
		routerGroup.Delete("/{id}", handler.DeleteConversation)
	})

	router.Route("/chat", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Chat)
		routerGroup.Post("/stream", handler.ChatStream)
	})
}

// GetConversations lists the authenticated user's conversations, most
// recently active first.
func (handler *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConversations")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	conversations, err := handler.service.ListConversations(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get conversations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Conversations retrieved successfully")

	response.WithJSON(w, http.StatusOK, conversations)
}

// CreateConversation starts an empty conversation with the default title.
func (handler *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateConversation")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	conversation, err := handler.service.CreateConversation(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create conversation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Conversation created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, conversation)
}

// GetConversationByID retrieves a conversation with its full message log.
func (handler *Handler) GetConversationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConversationByID")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	conversation, err := handler.service.GetConversation(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get conversation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Conversation retrieved successfully")

	response.WithJSON(w, http.StatusOK, conversation)
}

// DeleteConversation removes a conversation and all of its messages.
func (handler *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteConversation")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteConversation(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete conversation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Conversation deleted successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Conversation deleted successfully")
}

// Chat runs one full agent turn and responds with the saved messages once
// the turn completes.
func (handler *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Chat")
	defer scope.End()

	req := dto.ChatRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Chat(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("chat turn failed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Chat turn completed for user " + userID)

	response.WithJSON(w, http.StatusOK, res)
}

// ChatStream runs one agent turn and delivers the assistant's answer as
// server-sent events. Once streaming starts, failures are reported as a
// terminal error event on the stream.
func (handler *Handler) ChatStream(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChatStream")
	defer scope.End()

	req := dto.ChatRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	events, err := handler.service.ChatStream(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start chat stream")

		response.WithError(w, err)

		return
	}

	stream, err := response.NewEventStream(w)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open event stream")

		response.WithError(w, err)

		return
	}

	for event := range events {
		if err := stream.Send(event); err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("client disconnected during chat stream")

			return
		}
	}

	scope.AddEvent("Chat stream completed for user " + userID)
}
