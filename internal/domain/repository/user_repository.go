package repository

import (
	"context"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
)

// UserRepository defines the interface for identity-store operations.
// Create returns apperr.ErrConflict when the email is already registered.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
	SetRole(ctx context.Context, id string, role entity.Role) (*entity.User, error)
	SetStatus(ctx context.Context, id string, status entity.UserStatus) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
