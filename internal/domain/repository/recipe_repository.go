package repository

import (
	"context"
	"time"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
)

// RecipeFilter narrows a public listing. Zero values mean "no filter".
type RecipeFilter struct {
	Category string // normalized category name
	Query    string // case-insensitive title substring
	AuthorID string
}

// ModerationRow is the slim projection used by the admin recipes table.
type ModerationRow struct {
	ID          string
	Title       string
	Category    string
	IsFeatured  bool
	CreatedAt   time.Time
	AuthorName  string
	AuthorEmail string
}

// ModerationUpdate carries the restricted field set an admin may edit.
// Nil fields are left unchanged.
type ModerationUpdate struct {
	Title      *string
	IsFeatured *bool
}

// RecipeRepository defines catalog persistence. List and GetByID embed the
// author summary. Delete removes the recipe and its ledger rows in one
// transaction.
type RecipeRepository interface {
	Create(ctx context.Context, r *entity.Recipe) error
	GetByID(ctx context.Context, id string) (*entity.Recipe, error)
	List(ctx context.Context, f RecipeFilter) ([]*entity.Recipe, error)
	Update(ctx context.Context, r *entity.Recipe) error
	Delete(ctx context.Context, id string) error
	ApplyModeration(ctx context.Context, id string, upd ModerationUpdate) (*entity.Recipe, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	ListForModeration(ctx context.Context) ([]*ModerationRow, error)
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
}
