package dto

import (
	"tasker/internal/domains/todo/model"
	gDto "tasker/shared/dto"
	gModel "tasker/shared/model"
	"tasker/shared/timezone"

	"github.com/google/uuid"
)

const (
	ResolveStatusResolved  = "resolved"
	ResolveStatusNotFound  = "not_found"
	ResolveStatusAmbiguous = "ambiguous"
)

type CreateTodoRequest struct {
	Title string `json:"title" validate:"required,max=500"`
}

func (c *CreateTodoRequest) ToModel(userID string) model.Todo {
	return model.Todo{
		ID:        uuid.NewString(),
		Title:     c.Title,
		Completed: false,
		UserID:    userID,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateTodoRequest struct {
	Title     string `db:"title" json:"title" validate:"omitempty,max=500"`
	Completed *bool  `db:"completed" json:"completed" validate:"omitempty"`
}

type TodoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Completed = model.Completed
	r.Metadata.FromModel(model.Metadata)
}

type GetTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
	Total int            `json:"total"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo) {
	r.Total = len(models)

	r.Todos = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Todos[i].FromModel(mod)
	}
}

type DeleteCompletedResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// TodoMatch identifies one candidate when an identifier matches several todos.
type TodoMatch struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ResolveOutcome is the result of resolving a user-supplied todo identifier,
// which may be an exact ID or a fragment of a title.
type ResolveOutcome struct {
	Status  string
	Todo    TodoResponse
	Matches []TodoMatch
}
