package repository

import (
	"context"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
)

// SavedRecipeRepository is the bookmark ledger. Save returns
// apperr.ErrConflict when the pair already exists; the uniqueness
// constraint decides the winner under concurrent saves. Unsave is a no-op
// when the pair is absent.
type SavedRecipeRepository interface {
	Save(ctx context.Context, userID, recipeID string) error
	Unsave(ctx context.Context, userID, recipeID string) error
	ListRecipes(ctx context.Context, userID string) ([]*entity.Recipe, error)
	ListRecipeIDs(ctx context.Context, userID string) ([]string, error)
	Count(ctx context.Context) (int64, error)
}
