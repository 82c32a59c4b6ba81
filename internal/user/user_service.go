package user

import (
	"context"
	"errors"
	"strings"

	usererrors "go-leave/internal/user/errors"
	"go-leave/internal/shared/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Sync(ctx context.Context, req SyncUserRequest) error
	GetMe(ctx context.Context, requester principal.User) (UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Sync(ctx context.Context, req SyncUserRequest) error {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return usererrors.ErrInvalidUserID
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return usererrors.ErrEmailRequired
	}

	u := &User{
		ID:    id,
		Name:  strings.TrimSpace(req.Name),
		Email: email,
	}
	if err := s.repo.Upsert(ctx, u); err != nil {
		s.logger.Error("sync user persist failed", zap.String("user_id", req.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) GetMe(ctx context.Context, requester principal.User) (UserResponse, error) {
	if _, ok := requester.UUID(); !ok {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, requester.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		s.logger.Error("get me failed", zap.String("user_id", requester.ID), zap.Error(err))
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}
