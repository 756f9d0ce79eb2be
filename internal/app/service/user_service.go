package service

import (
	"context"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

type UserService struct {
	users ports.UserRepository
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListAll(ctx context.Context, actor domain.User) ([]domain.User, error) {
	if !domain.CanListUsers(actor) {
		return nil, domain.ErrForbidden
	}
	return s.users.ListAll(ctx)
}
