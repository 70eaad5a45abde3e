package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tasker/config"
	"tasker/infras/otel/mocks"
	sessionMocks "tasker/internal/domains/session/mocks"
	"tasker/internal/domains/session/model"
	"tasker/internal/domains/session/service"
	"tasker/shared/cache"
	cacheMocks "tasker/shared/cache/mocks"
	"tasker/shared/failure"
	"tasker/shared/timezone"
)

func TestSessionService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.SessionTTL = 60

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	validSession := model.Session{
		Token:     "token-1",
		UserID:    "user-1",
		ExpiresAt: timezone.Now().Add(time.Hour),
	}

	expiredSession := model.Session{
		Token:     "token-1",
		UserID:    "user-1",
		ExpiresAt: timezone.Now().Add(-time.Hour),
	}

	tests := []struct {
		name       string
		token      string
		setupMock  func()
		wantUserID string
		wantErr    bool
		wantCode   int
	}{
		{
			name:      "empty token",
			token:     "",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:  "cache hit with valid session",
			token: "token-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "session:token-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*model.Session)) = validSession

						return nil
					})
			},
			wantUserID: "user-1",
		},
		{
			name:  "cache hit with expired session",
			token: "token-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "session:token-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*model.Session)) = expiredSession

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), "session:token-1").
					Return(nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:  "cache miss falls back to database",
			token: "token-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "session:token-1", gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					GetByToken(gomock.Any(), "token-1").
					Return(validSession, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), "session:token-1", validSession, 60).
					Return(nil)
			},
			wantUserID: "user-1",
		},
		{
			name:  "unknown token",
			token: "token-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "session:token-1", gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					GetByToken(gomock.Any(), "token-1").
					Return(model.Session{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:  "expired session in database",
			token: "token-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "session:token-1", gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					GetByToken(gomock.Any(), "token-1").
					Return(expiredSession, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:  "repository error",
			token: "token-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "session:token-1", gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					GetByToken(gomock.Any(), "token-1").
					Return(model.Session{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			userID, err := svc.Validate(context.Background(), tt.token)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantUserID, userID)
		})
	}
}
