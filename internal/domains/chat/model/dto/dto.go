package dto

import (
	"encoding/json"

	"tasker/internal/domains/chat/model"
	"tasker/shared/constant"
	gDto "tasker/shared/dto"
	gModel "tasker/shared/model"
	"tasker/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ChatRequest struct {
	Message        string `json:"message" validate:"required"`
	ConversationID string `json:"conversation_id" validate:"omitempty,uuid"`
}

type ConversationResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	UserID string `json:"user_id"`
	gDto.Metadata
}

func (r *ConversationResponse) FromModel(model model.Conversation) {
	r.ID = model.ID
	r.Title = model.Title
	r.UserID = model.UserID
	r.Metadata.FromModel(model.Metadata)
}

func NewConversationModel(userID string) model.Conversation {
	return model.Conversation{
		ID:     uuid.NewString(),
		Title:  constant.ConversationDefaultTitle,
		UserID: userID,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

func NewMessageModel(conversationID, role, content string, toolCalls *string) model.Message {
	return model.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		ToolCalls:      toolCalls,
		CreatedAt:      timezone.Now(),
	}
}

type MessageResponse struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversation_id"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	ToolCalls      json.RawMessage `json:"tool_calls"`
	CreatedAt      string          `json:"created_at"`
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.ConversationID = model.ConversationID
	r.Role = model.Role
	r.Content = model.Content
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)

	if model.ToolCalls != nil {
		if !json.Valid([]byte(*model.ToolCalls)) {
			log.Warn().Str("message_id", model.ID).Msg("stored tool calls are not valid JSON, dropping from response")

			return
		}

		r.ToolCalls = json.RawMessage(*model.ToolCalls)
	}
}

type ConversationWithMessages struct {
	ConversationResponse
	Messages []MessageResponse `json:"messages"`
}

func (r *ConversationWithMessages) FromModels(conversation model.Conversation, messages []model.Message) {
	r.ConversationResponse.FromModel(conversation)

	r.Messages = make([]MessageResponse, len(messages))
	for i, msg := range messages {
		r.Messages[i].FromModel(msg)
	}
}

type ChatResponse struct {
	ConversationID   string          `json:"conversation_id"`
	Message          MessageResponse `json:"message"`
	AssistantMessage MessageResponse `json:"assistant_message"`
}

// StreamEvent is one server-sent event of a streamed chat turn: a content
// fragment, the terminal done marker, or a terminal error.
type StreamEvent struct {
	Content        string `json:"content,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	Done           bool   `json:"done,omitempty"`
	Error          string `json:"error,omitempty"`
}
