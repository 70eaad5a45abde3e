package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tasker/config"
	"tasker/infras/otel/mocks"
	todoMocks "tasker/internal/domains/todo/mocks"
	"tasker/internal/domains/todo/model"
	"tasker/internal/domains/todo/model/dto"
	"tasker/internal/domains/todo/service"
	"tasker/shared/failure"
	gModel "tasker/shared/model"
	"tasker/shared/timezone"
)

const testUserID = "user-1"

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateTodoRequest{Title: "Buy groceries"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "whitespace only title",
			req:       dto.CreateTodoRequest{Title: "   "},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "repository error",
			req:  dto.CreateTodoRequest{Title: "Buy groceries"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req, testUserID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Buy groceries", res.Title)
				assert.NotEmpty(t, res.ID)
				assert.False(t, res.Completed)
			}
		})
	}
}

func TestTodoService_Create_TrimsTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, todo model.Todo) error {
			assert.Equal(t, "Walk the dog", todo.Title)
			assert.Equal(t, testUserID, todo.UserID)

			return nil
		})

	res, err := svc.Create(context.Background(), dto.CreateTodoRequest{Title: "  Walk the dog  "}, testUserID)

	assert.NoError(t, err)
	assert.Equal(t, "Walk the dog", res.Title)
}

func TestTodoService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name             string
		includeCompleted bool
		setupMock        func()
		wantErr          bool
		wantTotal        int
	}{
		{
			name:             "successful get all",
			includeCompleted: true,
			setupMock: func() {
				todos := []model.Todo{
					{
						ID:        "todo-1",
						Title:     "Buy groceries",
						Completed: true,
						UserID:    testUserID,
						Metadata: gModel.Metadata{
							CreatedAt: timezone.Now(),
							UpdatedAt: timezone.Now(),
						},
					},
					{
						ID:        "todo-2",
						Title:     "Walk the dog",
						Completed: false,
						UserID:    testUserID,
						Metadata: gModel.Metadata{
							CreatedAt: timezone.Now(),
							UpdatedAt: timezone.Now(),
						},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(todos, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name:             "repository error",
			includeCompleted: false,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), testUserID, tt.includeCompleted)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.Total)
				assert.Len(t, res.Todos, tt.wantTotal)
			}
		})
	}
}

func TestTodoService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	todos := []model.Todo{
		{ID: "todo-1", Title: "Buy groceries", UserID: testUserID},
		{ID: "todo-2", Title: "Walk the dog", UserID: testUserID},
		{ID: "todo-3", Title: "Buy dog food", UserID: testUserID},
	}

	tests := []struct {
		name      string
		query     string
		setupMock func()
		wantErr   bool
		wantIDs   []string
	}{
		{
			name:  "case insensitive substring match",
			query: "DOG",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(todos, nil)
			},
			wantIDs: []string{"todo-2", "todo-3"},
		},
		{
			name:  "no matches",
			query: "laundry",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(todos, nil)
			},
			wantIDs: []string{},
		},
		{
			name:      "empty query",
			query:     "   ",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Search(context.Background(), testUserID, tt.query)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, len(tt.wantIDs), res.Total)

			gotIDs := make([]string, len(res.Todos))
			for i, todo := range res.Todos {
				gotIDs[i] = todo.ID
			}

			assert.ElementsMatch(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestTodoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{ID: "todo-1", Title: "Buy groceries", UserID: testUserID}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "todo-1", testUserID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "todo-1", res.ID)
			}
		})
	}
}

func TestTodoService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	const todoID = "3f2c8a1e-9b7d-4f6a-8c3e-2d1b5a9e7f40"

	todos := []model.Todo{
		{ID: "todo-1", Title: "Buy groceries", UserID: testUserID},
		{ID: "todo-2", Title: "Walk the dog", UserID: testUserID},
		{ID: "todo-3", Title: "Buy dog food", UserID: testUserID},
	}

	tests := []struct {
		name        string
		identifier  string
		setupMock   func()
		wantStatus  string
		wantID      string
		wantMatches int
	}{
		{
			name:       "exact id match",
			identifier: todoID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{ID: todoID, Title: "Buy groceries", UserID: testUserID}, nil)
			},
			wantStatus: dto.ResolveStatusResolved,
			wantID:     todoID,
		},
		{
			name:       "uuid with no owned row falls back to title match",
			identifier: todoID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(todos, nil)
			},
			wantStatus: dto.ResolveStatusNotFound,
		},
		{
			name:       "single title match",
			identifier: "groceries",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(todos, nil)
			},
			wantStatus: dto.ResolveStatusResolved,
			wantID:     "todo-1",
		},
		{
			name:       "ambiguous title match",
			identifier: "dog",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(todos, nil)
			},
			wantStatus:  dto.ResolveStatusAmbiguous,
			wantMatches: 2,
		},
		{
			name:       "no match",
			identifier: "laundry",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(todos, nil)
			},
			wantStatus: dto.ResolveStatusNotFound,
		},
		{
			name:       "empty identifier",
			identifier: "  ",
			setupMock:  func() {},
			wantStatus: dto.ResolveStatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Resolve(context.Background(), tt.identifier, testUserID)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)

			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, res.Todo.ID)
			}

			assert.Len(t, res.Matches, tt.wantMatches)
		})
	}
}

func TestTodoService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	completed := true

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful rename",
			req:  dto.UpdateTodoRequest{Title: "Walk the cat"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{ID: "todo-1", Title: "Walk the dog", UserID: testUserID}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "successful completion toggle",
			req:  dto.UpdateTodoRequest{Completed: &completed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{ID: "todo-1", Title: "Walk the dog", UserID: testUserID}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateTodoRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "not found",
			req:  dto.UpdateTodoRequest{Title: "Walk the cat"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "update error",
			req:  dto.UpdateTodoRequest{Title: "Walk the cat"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{ID: "todo-1", Title: "Walk the dog", UserID: testUserID}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Update(context.Background(), tt.req, "todo-1", testUserID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)

			if tt.req.Title != "" {
				assert.Equal(t, tt.req.Title, res.Title)
			}

			if tt.req.Completed != nil {
				assert.Equal(t, *tt.req.Completed, res.Completed)
			}
		})
	}
}

func TestTodoService_SetCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		completed bool
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "marks pending todo completed",
			completed: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{ID: "todo-1", Title: "Walk the dog", Completed: false, UserID: testUserID}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "already completed skips the write",
			completed: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{ID: "todo-1", Title: "Walk the dog", Completed: true, UserID: testUserID}, nil)
			},
		},
		{
			name:      "not found",
			completed: true,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.SetCompleted(context.Background(), "todo-1", testUserID, tt.completed)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.completed, res.Completed)
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "todo-1", testUserID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTodoService_DeleteAllCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name        string
		setupMock   func()
		wantErr     bool
		wantDeleted int64
	}{
		{
			name: "deletes completed todos",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(int64(3), nil)
			},
			wantDeleted: 3,
		},
		{
			name: "nothing to delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantDeleted: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			deleted, err := svc.DeleteAllCompleted(context.Background(), testUserID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantDeleted, deleted)
			}
		})
	}
}
