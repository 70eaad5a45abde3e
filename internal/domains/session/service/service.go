package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"tasker/config"
	"tasker/infras/otel"
	"tasker/internal/domains/session/model"
	"tasker/internal/domains/session/repository"
	"tasker/shared"
	"tasker/shared/cache"
	"tasker/shared/constant"
	"tasker/shared/failure"
	"tasker/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "session"

type Session interface {
	Validate(ctx context.Context, token string) (string, error)
}

type serviceImpl struct {
	repo  repository.Session
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Session, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Session {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Validate resolves a bearer token to the owning user ID. Valid sessions
// are cached; expiry is still checked on every call so a cached session
// cannot outlive its "expiresAt".
func (s *serviceImpl) Validate(ctx context.Context, token string) (userID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Validate")
	defer scope.End()

	if token == "" {
		return "", failure.Unauthorized("missing session token") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheKeyPrefix, token)

	var session model.Session

	cacheErr := s.cache.Get(ctx, cacheKey, &session)
	if cacheErr != nil && !errors.Is(cacheErr, cache.Nil) {
		log.Warn().Err(cacheErr).Msg("failed to read session cache, falling back to database")
	}

	if cacheErr == nil {
		if session.ExpiresAt.Before(timezone.Now()) {
			if delErr := s.cache.Delete(ctx, cacheKey); delErr != nil {
				log.Warn().Err(delErr).Msg("failed to drop expired session from cache")
			}

			return "", failure.Unauthorized("session expired") // nolint:wrapcheck
		}

		return session.UserID, nil
	}

	session, err = s.repo.GetByToken(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")
		scope.TraceError(err)

		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if session.Token == "" {
		return "", failure.Unauthorized("invalid session token") // nolint:wrapcheck
	}

	if session.ExpiresAt.Before(timezone.Now()) {
		return "", failure.Unauthorized("session expired") // nolint:wrapcheck
	}

	if saveErr := s.cache.Save(ctx, cacheKey, session, s.cfg.Cache.SessionTTL); saveErr != nil {
		log.Warn().Err(saveErr).Msg("failed to cache session")
	}

	return session.UserID, nil
}
