package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tasker/config"
	"tasker/infras/otel"
	"tasker/internal/domains/todo/model"
	"tasker/internal/domains/todo/model/dto"
	"tasker/internal/domains/todo/repository"
	"tasker/shared"
	"tasker/shared/constant"
	gDto "tasker/shared/dto"
	"tasker/shared/failure"
	"tasker/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest, userID string) (dto.TodoResponse, error)
	GetAll(ctx context.Context, userID string, includeCompleted bool) (dto.GetTodosResponse, error)
	Search(ctx context.Context, userID, query string) (dto.GetTodosResponse, error)
	Get(ctx context.Context, id, userID string) (dto.TodoResponse, error)
	Resolve(ctx context.Context, identifier, userID string) (dto.ResolveOutcome, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id, userID string) (dto.TodoResponse, error)
	SetCompleted(ctx context.Context, id, userID string, completed bool) (dto.TodoResponse, error)
	Delete(ctx context.Context, id, userID string) error
	DeleteAllCompleted(ctx context.Context, userID string) (int64, error)
}

type serviceImpl struct {
	repo repository.Todo
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Todo, cfg *config.Config, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest, userID string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return res, failure.BadRequestFromString("title cannot be empty") // nolint:wrapcheck
	}

	todo := req.ToModel(userID)

	if err = s.repo.Insert(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, userID string, includeCompleted bool) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := filterByUser(userID)
	if !includeCompleted {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCompleted,
			Value:    false,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	models, err := s.repo.GetAll(ctx, newestFirst(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, userID, query string) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	query = strings.TrimSpace(query)
	if query == "" {
		return res, failure.BadRequestFromString("search query cannot be empty") // nolint:wrapcheck
	}

	models, err := s.repo.GetAll(ctx, newestFirst(), filterByUser(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to search todos")

		return res, fmt.Errorf("failed to search todos: %w", err)
	}

	res.FromModels(matchByTitle(models, query))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, userID string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo, err := s.repo.Get(ctx, shared.FilterByOwner(id, userID, model.FieldID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

// Resolve maps a user-supplied identifier to one of the user's todos. An
// identifier that parses as a UUID is tried as an exact ID first; anything
// else, including a UUID that matches no owned row, is treated as a
// case-insensitive fragment of a title.
func (s *serviceImpl) Resolve(ctx context.Context, identifier, userID string) (res dto.ResolveOutcome, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		res.Status = dto.ResolveStatusNotFound

		return res, nil
	}

	if _, parseErr := uuid.Parse(identifier); parseErr == nil {
		todo, getErr := s.repo.Get(ctx, shared.FilterByOwner(identifier, userID, model.FieldID, model.FieldUserID, model.TableName))
		if getErr != nil {
			log.Error().Err(getErr).Msg("failed to resolve todo by id")

			return res, fmt.Errorf("failed to resolve todo by id: %w", getErr)
		}

		if todo.ID != "" {
			res.Status = dto.ResolveStatusResolved
			res.Todo.FromModel(todo)

			return res, nil
		}
	}

	models, err := s.repo.GetAll(ctx, newestFirst(), filterByUser(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve todo by title")

		return res, fmt.Errorf("failed to resolve todo by title: %w", err)
	}

	matched := matchByTitle(models, identifier)

	switch len(matched) {
	case 0:
		res.Status = dto.ResolveStatusNotFound
	case 1:
		res.Status = dto.ResolveStatusResolved
		res.Todo.FromModel(matched[0])
	default:
		res.Status = dto.ResolveStatusAmbiguous
		res.Matches = make([]dto.TodoMatch, len(matched))

		for i, mod := range matched {
			res.Matches[i] = dto.TodoMatch{ID: mod.ID, Title: mod.Title}
		}
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id, userID string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Title = strings.TrimSpace(req.Title)
	if req == (dto.UpdateTodoRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByOwner(id, userID, model.FieldID, model.FieldUserID, model.TableName)

	todo, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	if req.Title != "" {
		todo.Title = req.Title
	}

	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	todo.UpdatedAt = updatedFields[constant.FieldUpdatedAt].(time.Time)

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) SetCompleted(ctx context.Context, id, userID string, completed bool) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.SetCompleted")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByOwner(id, userID, model.FieldID, model.FieldUserID, model.TableName)

	todo, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	// Already in the requested state, nothing to write.
	if todo.Completed == completed {
		res.FromModel(todo)

		return res, nil
	}

	updatedFields := map[string]any{
		model.FieldCompleted:    completed,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update todo completion")

		return res, fmt.Errorf("failed to update todo completion: %w", err)
	}

	todo.Completed = completed
	todo.UpdatedAt = updatedFields[constant.FieldUpdatedAt].(time.Time)

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByOwner(id, userID, model.FieldID, model.FieldUserID, model.TableName)

	deleted, err := s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if deleted == 0 {
		return failure.NotFound("todo not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) DeleteAllCompleted(ctx context.Context, userID string) (deleted int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.DeleteAllCompleted")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := filterByUser(userID)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldCompleted,
		Value:    true,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	deleted, err = s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete completed todos")

		return 0, fmt.Errorf("failed to delete completed todos: %w", err)
	}

	return deleted, nil
}

func filterByUser(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func newestFirst() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}
}

func matchByTitle(models []model.Todo, fragment string) []model.Todo {
	fragment = strings.ToLower(fragment)

	matched := []model.Todo{}
	for _, mod := range models {
		if strings.Contains(strings.ToLower(mod.Title), fragment) {
			matched = append(matched, mod)
		}
	}

	return matched
}
