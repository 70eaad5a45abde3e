package dto_test

import (
	"testing"

	"tasker/internal/domains/chat/model"
	"tasker/internal/domains/chat/model/dto"
	"tasker/shared/constant"
	"tasker/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNewConversationModel(t *testing.T) {
	userID := "test-user-id"
	conversation := dto.NewConversationModel(userID)

	assert.NotEmpty(t, conversation.ID, "expected ID to be generated")
	assert.Equal(t, constant.ConversationDefaultTitle, conversation.Title)
	assert.Equal(t, userID, conversation.UserID)
	assert.False(t, conversation.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, conversation.UpdatedAt.IsZero(), "expected UpdatedAt to be set")
}

func TestNewMessageModel(t *testing.T) {
	toolCalls := `[{"tool":"list_todos"}]`
	message := dto.NewMessageModel("conv-1", constant.MessageRoleAssistant, "Found 2 todo(s)", &toolCalls)

	assert.NotEmpty(t, message.ID, "expected ID to be generated")
	assert.Equal(t, "conv-1", message.ConversationID)
	assert.Equal(t, constant.MessageRoleAssistant, message.Role)
	assert.Equal(t, "Found 2 todo(s)", message.Content)
	assert.Equal(t, &toolCalls, message.ToolCalls)
	assert.False(t, message.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestMessageResponse_FromModel(t *testing.T) {
	toolCalls := `[{"tool":"create_todo","arguments":{"title":"buy milk"}}]`
	messageModel := model.Message{
		ID:             "msg-1",
		ConversationID: "conv-1",
		Role:           constant.MessageRoleAssistant,
		Content:        "Created todo: 'buy milk'",
		ToolCalls:      &toolCalls,
		CreatedAt:      timezone.Now(),
	}

	var response dto.MessageResponse
	response.FromModel(messageModel)

	assert.Equal(t, messageModel.ID, response.ID)
	assert.Equal(t, messageModel.ConversationID, response.ConversationID)
	assert.Equal(t, messageModel.Role, response.Role)
	assert.Equal(t, messageModel.Content, response.Content)
	assert.JSONEq(t, toolCalls, string(response.ToolCalls))
	assert.NotEmpty(t, response.CreatedAt)
}

func TestMessageResponse_FromModel_InvalidToolCalls(t *testing.T) {
	toolCalls := `{not json`
	messageModel := model.Message{
		ID:        "msg-1",
		Role:      constant.MessageRoleAssistant,
		Content:   "hello",
		ToolCalls: &toolCalls,
		CreatedAt: timezone.Now(),
	}

	var response dto.MessageResponse
	response.FromModel(messageModel)

	assert.Nil(t, response.ToolCalls, "invalid stored JSON should be dropped")
}

func TestMessageResponse_FromModel_NoToolCalls(t *testing.T) {
	messageModel := model.Message{
		ID:        "msg-1",
		Role:      constant.MessageRoleUser,
		Content:   "hello",
		CreatedAt: timezone.Now(),
	}

	var response dto.MessageResponse
	response.FromModel(messageModel)

	assert.Nil(t, response.ToolCalls)
}

func TestConversationWithMessages_FromModels(t *testing.T) {
	conversation := dto.NewConversationModel("test-user")
	messages := []model.Message{
		dto.NewMessageModel(conversation.ID, constant.MessageRoleUser, "buy milk", nil),
		dto.NewMessageModel(conversation.ID, constant.MessageRoleAssistant, "Created todo: 'buy milk'", nil),
	}

	var response dto.ConversationWithMessages
	response.FromModels(conversation, messages)

	assert.Equal(t, conversation.ID, response.ID)
	assert.Len(t, response.Messages, 2)
	assert.Equal(t, constant.MessageRoleUser, response.Messages[0].Role)
	assert.Equal(t, constant.MessageRoleAssistant, response.Messages[1].Role)
}
