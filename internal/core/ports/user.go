package ports

import (
	"context"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}

type UserService interface {
	ListAll(ctx context.Context, actor domain.User) ([]domain.User, error)
}
