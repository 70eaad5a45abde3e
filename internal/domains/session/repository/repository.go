package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tasker/infras/otel"
	"tasker/infras/postgres"
	"tasker/internal/domains/session/model"
	"tasker/shared/constant"
	"tasker/shared/logger"
)

// The session table is owned by the auth provider and carries quoted
// camelCase columns, so it is queried directly instead of through the
// tag-driven query builder.
const queryGetByToken = `SELECT token, "userId", "expiresAt" FROM session WHERE token = $1`

type Session interface {
	GetByToken(ctx context.Context, token string) (model.Session, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Session {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetByToken(ctx context.Context, token string) (session model.Session, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.GetByToken")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetByToken)

	err = repo.db.Read.GetContext(ctx, &session, queryGetByToken, token)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Session{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Session{}, fmt.Errorf("failed to get session (%s): %w", model.EntityName, err)
	}

	return session, nil
}
