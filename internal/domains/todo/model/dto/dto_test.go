package dto_test

import (
	"testing"

	"tasker/internal/domains/todo/model"
	"tasker/internal/domains/todo/model/dto"
	gModel "tasker/shared/model"
	"tasker/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateTodoRequest_ToModel(t *testing.T) {
	req := dto.CreateTodoRequest{
		Title: "Test Todo",
	}

	userID := "test-user-id"
	model := req.ToModel(userID)

	assert.NotEmpty(t, model.ID, "expected ID to be generated")
	assert.Equal(t, req.Title, model.Title)
	assert.False(t, model.Completed)
	assert.Equal(t, userID, model.UserID)
	assert.False(t, model.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, model.UpdatedAt.IsZero(), "expected UpdatedAt to be set")
}

func TestTodoResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	todoModel := model.Todo{
		ID:        "test-id",
		Title:     "Test Todo",
		Completed: true,
		UserID:    "test-user",
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	var response dto.TodoResponse
	response.FromModel(todoModel)

	assert.Equal(t, todoModel.ID, response.ID)
	assert.Equal(t, todoModel.Title, response.Title)
	assert.Equal(t, todoModel.Completed, response.Completed)
	assert.NotEmpty(t, response.CreatedAt)
	assert.NotEmpty(t, response.UpdatedAt)
}

func TestGetTodosResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	todos := []model.Todo{
		{
			ID:        "test-id-1",
			Title:     "Test Todo 1",
			Completed: false,
			UserID:    "test-user",
			Metadata: gModel.Metadata{
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			ID:        "test-id-2",
			Title:     "Test Todo 2",
			Completed: true,
			UserID:    "test-user",
			Metadata: gModel.Metadata{
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
	}

	var response dto.GetTodosResponse
	response.FromModels(todos)

	assert.Equal(t, 2, response.Total)
	assert.Len(t, response.Todos, len(todos))

	// Test individual todo mapping
	for i, todo := range response.Todos {
		assert.Equal(t, todos[i].ID, todo.ID)
		assert.Equal(t, todos[i].Title, todo.Title)
	}
}

func TestGetTodosResponse_FromModels_EmptyList(t *testing.T) {
	var todos []model.Todo

	var response dto.GetTodosResponse
	response.FromModels(todos)

	assert.Equal(t, 0, response.Total)
	assert.Len(t, response.Todos, 0)
}
