package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"tasker/config"
	"tasker/infras/otel"
	agentService "tasker/internal/domains/agent/service"
	"tasker/internal/domains/agent/tool"
	"tasker/internal/domains/chat/model"
	"tasker/internal/domains/chat/model/dto"
	"tasker/internal/domains/chat/repository"
	"tasker/shared"
	"tasker/shared/constant"
	gDto "tasker/shared/dto"
	"tasker/shared/failure"
	"tasker/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Chat interface {
	ListConversations(ctx context.Context, userID string) ([]dto.ConversationResponse, error)
	CreateConversation(ctx context.Context, userID string) (dto.ConversationResponse, error)
	GetConversation(ctx context.Context, id, userID string) (dto.ConversationWithMessages, error)
	DeleteConversation(ctx context.Context, id, userID string) error
	Chat(ctx context.Context, req dto.ChatRequest, userID string) (dto.ChatResponse, error)
	ChatStream(ctx context.Context, req dto.ChatRequest, userID string) (<-chan dto.StreamEvent, error)
}

type serviceImpl struct {
	conversations repository.Conversation
	messages      repository.Message
	agent         agentService.Agent
	cfg           *config.Config
	otel          otel.Otel
}

func New(conversations repository.Conversation, messages repository.Message, agent agentService.Agent, cfg *config.Config, otel otel.Otel) Chat {
	return &serviceImpl{
		conversations: conversations,
		messages:      messages,
		agent:         agent,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) ListConversations(ctx context.Context, userID string) (res []dto.ConversationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chat.ListConversations")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ConversationTableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldUpdatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.conversations.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get conversations")

		return res, fmt.Errorf("failed to get conversations: %w", err)
	}

	res = make([]dto.ConversationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) CreateConversation(ctx context.Context, userID string) (res dto.ConversationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chat.CreateConversation")
	defer scope.End()
	defer scope.TraceIfError(err)

	conversation := dto.NewConversationModel(userID)

	if err = s.conversations.Insert(ctx, conversation); err != nil {
		log.Error().Err(err).Msg("failed to create conversation")

		return res, fmt.Errorf("failed to create conversation: %w", err)
	}

	res.FromModel(conversation)

	return res, nil
}

func (s *serviceImpl) GetConversation(ctx context.Context, id, userID string) (res dto.ConversationWithMessages, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chat.GetConversation")
	defer scope.End()
	defer scope.TraceIfError(err)

	conversation, err := s.getOwnedConversation(ctx, id, userID)
	if err != nil {
		return res, err
	}

	messages, err := s.getHistory(ctx, conversation.ID)
	if err != nil {
		return res, err
	}

	res.FromModels(conversation, messages)

	return res, nil
}

// DeleteConversation removes a conversation and everything it owns. Messages
// go first so a failure never leaves orphaned rows behind a missing parent.
func (s *serviceImpl) DeleteConversation(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chat.DeleteConversation")
	defer scope.End()
	defer scope.TraceIfError(err)

	conversation, err := s.getOwnedConversation(ctx, id, userID)
	if err != nil {
		return err
	}

	if _, err = s.messages.Delete(ctx, filterByConversation(conversation.ID)); err != nil {
		log.Error().Err(err).Msg("failed to delete conversation messages")

		return fmt.Errorf("failed to delete conversation messages: %w", err)
	}

	if _, err = s.conversations.Delete(ctx, shared.FilterByID(conversation.ID, model.FieldID, model.ConversationTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete conversation")

		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	return nil
}

func (s *serviceImpl) Chat(ctx context.Context, req dto.ChatRequest, userID string) (res dto.ChatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chat.Chat")
	defer scope.End()
	defer scope.TraceIfError(err)

	conversation, history, userMessage, err := s.prepareTurn(ctx, req, userID)
	if err != nil {
		return res, err
	}

	answer, records, err := s.agent.Chat(ctx, userID, req.Message, toHistory(history))
	if err != nil {
		s.saveTurnFailure(ctx, conversation.ID, err)

		return res, fmt.Errorf("agent turn failed: %w", err)
	}

	toolCalls, err := marshalToolCalls(records)
	if err != nil {
		return res, err
	}

	assistantMessage := dto.NewMessageModel(conversation.ID, constant.MessageRoleAssistant, answer, toolCalls)

	if err = s.messages.Insert(ctx, assistantMessage); err != nil {
		log.Error().Err(err).Msg("failed to save assistant message")

		return res, fmt.Errorf("failed to save assistant message: %w", err)
	}

	if len(history) == 0 {
		s.deriveTitle(ctx, conversation.ID, req.Message)
	}

	res.ConversationID = conversation.ID
	res.Message.FromModel(userMessage)
	res.AssistantMessage.FromModel(assistantMessage)

	return res, nil
}

// ChatStream mirrors Chat but delivers the assistant text as a sequence of
// events. Failures past the prepare step surface as a terminal error event,
// never as an error return, since the event stream may already be open.
func (s *serviceImpl) ChatStream(ctx context.Context, req dto.ChatRequest, userID string) (<-chan dto.StreamEvent, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".chat.ChatStream")
	defer scope.End()

	conversation, history, _, err := s.prepareTurn(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	events := make(chan dto.StreamEvent)

	chunks, err := s.agent.ChatStream(ctx, userID, req.Message, toHistory(history))
	if err != nil {
		scope.TraceError(err)

		go func() {
			defer close(events)

			emit(ctx, events, dto.StreamEvent{Error: err.Error()})
		}()

		return events, nil
	}

	go func() {
		defer close(events)

		var full string

		for chunk := range chunks {
			if chunk.Err != nil {
				emit(ctx, events, dto.StreamEvent{Error: chunk.Err.Error()})

				return
			}

			full += chunk.Content

			if !emit(ctx, events, dto.StreamEvent{Content: chunk.Content, ConversationID: conversation.ID}) {
				return
			}
		}

		assistantMessage := dto.NewMessageModel(conversation.ID, constant.MessageRoleAssistant, full, nil)

		if insertErr := s.messages.Insert(ctx, assistantMessage); insertErr != nil {
			log.Error().Err(insertErr).Msg("failed to save streamed assistant message")
			emit(ctx, events, dto.StreamEvent{Error: "failed to save assistant message"})

			return
		}

		if len(history) == 0 {
			s.deriveTitle(ctx, conversation.ID, req.Message)
		}

		emit(ctx, events, dto.StreamEvent{Done: true, ConversationID: conversation.ID})
	}()

	return events, nil
}

// prepareTurn loads or creates the conversation, captures the pre-turn
// history, and persists the inbound user message. The history returned is
// the state before this turn; its emptiness drives title derivation.
func (s *serviceImpl) prepareTurn(ctx context.Context, req dto.ChatRequest, userID string) (model.Conversation, []model.Message, model.Message, error) {
	var conversation model.Conversation

	if req.ConversationID != "" {
		owned, err := s.getOwnedConversation(ctx, req.ConversationID, userID)
		if err != nil {
			return model.Conversation{}, nil, model.Message{}, err
		}

		conversation = owned
	} else {
		conversation = dto.NewConversationModel(userID)

		if err := s.conversations.Insert(ctx, conversation); err != nil {
			log.Error().Err(err).Msg("failed to create conversation")

			return model.Conversation{}, nil, model.Message{}, fmt.Errorf("failed to create conversation: %w", err)
		}
	}

	history, err := s.getHistory(ctx, conversation.ID)
	if err != nil {
		return model.Conversation{}, nil, model.Message{}, err
	}

	userMessage := dto.NewMessageModel(conversation.ID, constant.MessageRoleUser, req.Message, nil)

	if err := s.messages.Insert(ctx, userMessage); err != nil {
		log.Error().Err(err).Msg("failed to save user message")

		return model.Conversation{}, nil, model.Message{}, fmt.Errorf("failed to save user message: %w", err)
	}

	return conversation, history, userMessage, nil
}

func (s *serviceImpl) getOwnedConversation(ctx context.Context, id, userID string) (model.Conversation, error) {
	conversation, err := s.conversations.Get(ctx, shared.FilterByOwner(id, userID, model.FieldID, model.FieldUserID, model.ConversationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get conversation")

		return model.Conversation{}, fmt.Errorf("failed to get conversation: %w", err)
	}

	if conversation.ID == "" {
		return model.Conversation{}, failure.NotFound("conversation not found") // nolint:wrapcheck
	}

	return conversation, nil
}

func (s *serviceImpl) getHistory(ctx context.Context, conversationID string) ([]model.Message, error) {
	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	messages, err := s.messages.GetAll(ctx, params, filterByConversation(conversationID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get conversation messages")

		return nil, fmt.Errorf("failed to get conversation messages: %w", err)
	}

	return messages, nil
}

// saveTurnFailure records a best-effort assistant message when the agent
// fails, so the conversation log is never silently missing a turn.
func (s *serviceImpl) saveTurnFailure(ctx context.Context, conversationID string, cause error) {
	content := fmt.Sprintf("I'm sorry, I encountered an error: %s. Please try again.", cause.Error())
	message := dto.NewMessageModel(conversationID, constant.MessageRoleAssistant, content, nil)

	if err := s.messages.Insert(ctx, message); err != nil {
		log.Warn().Err(err).Msg("failed to record assistant failure message")
	}
}

func (s *serviceImpl) deriveTitle(ctx context.Context, conversationID, firstMessage string) {
	title := shared.TruncateWords(firstMessage, constant.TitleMaxWords, constant.TitleEllipsis)

	updatedFields := map[string]any{
		model.FieldTitle:        title,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err := s.conversations.Update(ctx, updatedFields, shared.FilterByID(conversationID, model.FieldID, model.ConversationTableName)); err != nil {
		log.Warn().Err(err).Msg("failed to derive conversation title")
	}
}

func filterByConversation(conversationID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldConversationID,
				Value:    conversationID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.MessageTableName,
			},
		},
	}
}

func toHistory(messages []model.Message) []agentService.HistoryMessage {
	history := make([]agentService.HistoryMessage, len(messages))
	for i, msg := range messages {
		history[i] = agentService.HistoryMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	return history
}

func marshalToolCalls(records []tool.CallRecord) (*string, error) {
	if len(records) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(records)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal tool call records")

		return nil, fmt.Errorf("failed to marshal tool call records: %w", err)
	}

	serialized := string(payload)

	return &serialized, nil
}

func emit(ctx context.Context, events chan<- dto.StreamEvent, event dto.StreamEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
