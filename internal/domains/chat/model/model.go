package model

import (
	"time"

	"tasker/shared/model"
)

const (
	ConversationTableName  = "conversations"
	ConversationEntityName = "conversation"

	MessageTableName  = "messages"
	MessageEntityName = "message"

	FieldID             = "id"
	FieldUserID         = "user_id"
	FieldTitle          = "title"
	FieldConversationID = "conversation_id"
	FieldRole           = "role"
)

type Conversation struct {
	ID     string `db:"id"`
	Title  string `db:"title"`
	UserID string `db:"user_id"`
	model.Metadata
}

// Message is one entry in a conversation's append-only log. ToolCalls holds
// the serialized audit record of tool invocations made while producing an
// assistant message; it is never replayed to the model.
type Message struct {
	ID             string    `db:"id"`
	ConversationID string    `db:"conversation_id"`
	Role           string    `db:"role"`
	Content        string    `db:"content"`
	ToolCalls      *string   `db:"tool_calls"`
	CreatedAt      time.Time `db:"created_at"`
}
