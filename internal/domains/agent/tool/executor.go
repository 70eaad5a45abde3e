package tool

//go:generate go run go.uber.org/mock/mockgen -source=./executor.go -destination=./mocks/executor_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tasker/infras/otel"
	todoDto "tasker/internal/domains/todo/model/dto"
	todoService "tasker/internal/domains/todo/service"
	"tasker/shared/constant"
)

// Envelope is the uniform outcome of a tool call, fed back to the model as
// JSON. Failures are data here, never errors: the model is expected to react
// to them in natural language.
type Envelope struct {
	Success      bool                   `json:"success"`
	Message      string                 `json:"message"`
	Todo         *todoDto.TodoResponse  `json:"todo,omitempty"`
	Todos        []todoDto.TodoResponse `json:"todos,omitempty"`
	Total        *int                   `json:"total,omitempty"`
	Matches      []todoDto.TodoMatch    `json:"matches,omitempty"`
	DeletedCount *int64                 `json:"deleted_count,omitempty"`
}

// CallRecord captures one executed tool call for the audit trail attached to
// the resulting assistant message.
type CallRecord struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
	Result    Envelope       `json:"result"`
}

type Executor interface {
	Execute(ctx context.Context, name string, args map[string]any, userID string) Envelope
}

type handlerFunc func(ctx context.Context, args map[string]any, userID string) Envelope

type executorImpl struct {
	todos    todoService.Todo
	otel     otel.Otel
	handlers map[string]handlerFunc
}

func NewExecutor(todos todoService.Todo, otel otel.Otel) Executor {
	executor := &executorImpl{
		todos: todos,
		otel:  otel,
	}

	executor.handlers = map[string]handlerFunc{
		NameCreateTodo:           executor.createTodo,
		NameListTodos:            executor.listTodos,
		NameCompleteTodo:         executor.completeTodo,
		NameUncompleteTodo:       executor.uncompleteTodo,
		NameDeleteTodo:           executor.deleteTodo,
		NameDeleteCompletedTodos: executor.deleteCompletedTodos,
		NameUpdateTodo:           executor.updateTodo,
		NameSearchTodos:          executor.searchTodos,
	}

	return executor
}

func (e *executorImpl) Execute(ctx context.Context, name string, args map[string]any, userID string) Envelope {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tool.Execute")
	defer scope.End()

	scope.SetAttribute("tool.name", name)

	handler, ok := e.handlers[name]
	if !ok {
		return failureEnvelope(fmt.Sprintf("Unknown tool: %s", name))
	}

	desc, _ := descriptorByName(name)
	if env, ok := validateArgs(desc, args); !ok {
		return env
	}

	return handler(ctx, args, userID)
}

// validateArgs checks the argument bag against the descriptor's schema:
// required parameters must be present and every supplied parameter must
// carry the declared primitive type.
func validateArgs(desc Descriptor, args map[string]any) (Envelope, bool) {
	for _, param := range desc.Params {
		value, present := args[param.Name]
		if !present {
			if param.Required {
				return failureEnvelope(fmt.Sprintf("Missing required parameter '%s' for tool %s", param.Name, desc.Name)), false
			}

			continue
		}

		switch param.Type {
		case paramTypeString:
			if _, ok := value.(string); !ok {
				return failureEnvelope(fmt.Sprintf("Parameter '%s' of tool %s must be a string", param.Name, desc.Name)), false
			}
		case paramTypeBoolean:
			if _, ok := value.(bool); !ok {
				return failureEnvelope(fmt.Sprintf("Parameter '%s' of tool %s must be a boolean", param.Name, desc.Name)), false
			}
		}
	}

	return Envelope{}, true
}

func (e *executorImpl) createTodo(ctx context.Context, args map[string]any, userID string) Envelope {
	title, _ := args[paramTitle].(string)

	res, err := e.todos.Create(ctx, todoDto.CreateTodoRequest{Title: title}, userID)
	if err != nil {
		return failureEnvelope(err.Error())
	}

	return Envelope{
		Success: true,
		Message: fmt.Sprintf("Created todo: '%s'", res.Title),
		Todo:    &res,
	}
}

func (e *executorImpl) listTodos(ctx context.Context, args map[string]any, userID string) Envelope {
	includeCompleted := true
	if value, ok := args[paramIncludeCompleted].(bool); ok {
		includeCompleted = value
	}

	res, err := e.todos.GetAll(ctx, userID, includeCompleted)
	if err != nil {
		return failureEnvelope(err.Error())
	}

	return Envelope{
		Success: true,
		Message: fmt.Sprintf("Found %d todo(s)", res.Total),
		Todos:   res.Todos,
		Total:   &res.Total,
	}
}

func (e *executorImpl) completeTodo(ctx context.Context, args map[string]any, userID string) Envelope {
	identifier, _ := args[paramIdentifier].(string)

	target, failEnv := e.resolveTarget(ctx, identifier, userID)
	if failEnv != nil {
		return *failEnv
	}

	if target.Completed {
		return Envelope{
			Success: true,
			Message: fmt.Sprintf("Todo '%s' is already completed", target.Title),
			Todo:    &target,
		}
	}

	res, err := e.todos.SetCompleted(ctx, target.ID, userID, true)
	if err != nil {
		return failureEnvelope(err.Error())
	}

	return Envelope{
		Success: true,
		Message: fmt.Sprintf("Marked '%s' as completed", res.Title),
		Todo:    &res,
	}
}

func (e *executorImpl) uncompleteTodo(ctx context.Context, args map[string]any, userID string) Envelope {
	identifier, _ := args[paramIdentifier].(string)

	target, failEnv := e.resolveTarget(ctx, identifier, userID)
	if failEnv != nil {
		return *failEnv
	}

	if !target.Completed {
		return Envelope{
			Success: true,
			Message: fmt.Sprintf("Todo '%s' is not completed yet", target.Title),
			Todo:    &target,
		}
	}

	res, err := e.todos.SetCompleted(ctx, target.ID, userID, false)
	if err != nil {
		return failureEnvelope(err.Error())
	}

	return Envelope{
		Success: true,
		Message: fmt.Sprintf("Marked '%s' as not completed", res.Title),
		Todo:    &res,
	}
}

func (e *executorImpl) deleteTodo(ctx context.Context, args map[string]any, userID string) Envelope {
	identifier, _ := args[paramIdentifier].(string)

	target, failEnv := e.resolveTarget(ctx, identifier, userID)
	if failEnv != nil {
		return *failEnv
	}

	if err := e.todos.Delete(ctx, target.ID, userID); err != nil {
		return failureEnvelope(err.Error())
	}

	return Envelope{
		Success: true,
		Message: fmt.Sprintf("Deleted todo: '%s'", target.Title),
	}
}

func (e *executorImpl) deleteCompletedTodos(ctx context.Context, _ map[string]any, userID string) Envelope {
	count, err := e.todos.DeleteAllCompleted(ctx, userID)
	if err != nil {
		return failureEnvelope(err.Error())
	}

	message := fmt.Sprintf("Deleted %d completed todo(s)", count)
	if count == 0 {
		message = "No completed todos to delete"
	}

	return Envelope{
		Success:      true,
		Message:      message,
		DeletedCount: &count,
	}
}

func (e *executorImpl) updateTodo(ctx context.Context, args map[string]any, userID string) Envelope {
	identifier, _ := args[paramIdentifier].(string)
	newTitle, _ := args[paramNewTitle].(string)

	target, failEnv := e.resolveTarget(ctx, identifier, userID)
	if failEnv != nil {
		return *failEnv
	}

	res, err := e.todos.Update(ctx, todoDto.UpdateTodoRequest{Title: newTitle}, target.ID, userID)
	if err != nil {
		return failureEnvelope(err.Error())
	}

	return Envelope{
		Success: true,
		Message: fmt.Sprintf("Updated '%s' to '%s'", target.Title, res.Title),
		Todo:    &res,
	}
}

func (e *executorImpl) searchTodos(ctx context.Context, args map[string]any, userID string) Envelope {
	query, _ := args[paramQuery].(string)

	res, err := e.todos.Search(ctx, userID, query)
	if err != nil {
		return failureEnvelope(err.Error())
	}

	return Envelope{
		Success: true,
		Message: fmt.Sprintf("Found %d todo(s) matching '%s'", res.Total, query),
		Todos:   res.Todos,
		Total:   &res.Total,
	}
}

// resolveTarget applies the shared identifier lookup. A nil envelope means
// the identifier resolved to exactly one todo; otherwise the returned
// envelope reports not-found or the ambiguous candidate list and the caller
// must not mutate anything.
func (e *executorImpl) resolveTarget(ctx context.Context, identifier, userID string) (todoDto.TodoResponse, *Envelope) {
	outcome, err := e.todos.Resolve(ctx, identifier, userID)
	if err != nil {
		env := failureEnvelope(err.Error())

		return todoDto.TodoResponse{}, &env
	}

	switch outcome.Status {
	case todoDto.ResolveStatusResolved:
		return outcome.Todo, nil
	case todoDto.ResolveStatusAmbiguous:
		env := Envelope{
			Success: false,
			Message: fmt.Sprintf("Multiple todos match '%s'. Please be more specific.", identifier),
			Matches: outcome.Matches,
		}

		return todoDto.TodoResponse{}, &env
	default:
		env := failureEnvelope(fmt.Sprintf("No todo found matching '%s'", identifier))

		return todoDto.TodoResponse{}, &env
	}
}

func failureEnvelope(message string) Envelope {
	return Envelope{
		Success: false,
		Message: message,
	}
}
