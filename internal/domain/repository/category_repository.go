package repository

import (
	"context"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
)

// CategoryRepository defines taxonomy persistence. List is ordered by name
// ascending. Delete does not touch recipes tagged with the category's name.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
}
