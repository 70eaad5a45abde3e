package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tasker/infras/otel"
	"tasker/infras/postgres"
	"tasker/internal/domains/chat/model"
	gDto "tasker/shared/dto"
	gRepo "tasker/shared/repository"
)

type Conversation interface {
	Insert(ctx context.Context, model model.Conversation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Conversation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Conversation, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type Message interface {
	Insert(ctx context.Context, model model.Message) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Message, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type conversationImpl struct {
	gRepo.Repository[model.Conversation]
	db   *postgres.Connection
	otel otel.Otel
}

func NewConversation(db *postgres.Connection, otel otel.Otel) Conversation {
	return &conversationImpl{
		Repository: gRepo.NewRepository[model.Conversation](model.ConversationEntityName, model.ConversationTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type messageImpl struct {
	gRepo.Repository[model.Message]
	db   *postgres.Connection
	otel otel.Otel
}

func NewMessage(db *postgres.Connection, otel otel.Otel) Message {
	return &messageImpl{
		Repository: gRepo.NewRepository[model.Message](model.MessageEntityName, model.MessageTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
