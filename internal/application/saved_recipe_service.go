package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/policy"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

// SavedRecipeService implements the bookmark ledger.
type SavedRecipeService struct {
	Saved   repository.SavedRecipeRepository
	Recipes repository.RecipeRepository
	Logger  *logrus.Logger
}

func NewSavedRecipeService(saved repository.SavedRecipeRepository, recipes repository.RecipeRepository, logger *logrus.Logger) *SavedRecipeService {
	return &SavedRecipeService{Saved: saved, Recipes: recipes, Logger: logger}
}

// Save bookmarks a recipe for the caller. Saving an already-saved recipe
// fails with ErrConflict so the client can tell "already saved" apart from
// a generic failure.
func (s *SavedRecipeService) Save(ctx context.Context, caller *policy.Caller, recipeID string) error {
	if caller == nil {
		return apperr.ErrUnauthenticated
	}
	if _, err := s.Recipes.GetByID(ctx, recipeID); err != nil {
		return err
	}
	return s.Saved.Save(ctx, caller.ID, recipeID)
}

// Unsave removes a bookmark. Unsaving something not saved is a no-op
// success.
func (s *SavedRecipeService) Unsave(ctx context.Context, caller *policy.Caller, recipeID string) error {
	if caller == nil {
		return apperr.ErrUnauthenticated
	}
	return s.Saved.Unsave(ctx, caller.ID, recipeID)
}

// ListRecipes returns the caller's bookmarked recipes with embedded
// author summaries.
func (s *SavedRecipeService) ListRecipes(ctx context.Context, caller *policy.Caller) ([]*entity.Recipe, error) {
	if caller == nil {
		return nil, apperr.ErrUnauthenticated
	}
	return s.Saved.ListRecipes(ctx, caller.ID)
}

// ListRecipeIDs is the lightweight membership variant used by public list
// pages. An unauthenticated caller gets an empty set, not an error.
func (s *SavedRecipeService) ListRecipeIDs(ctx context.Context, caller *policy.Caller) ([]string, error) {
	if caller == nil {
		return []string{}, nil
	}
	return s.Saved.ListRecipeIDs(ctx, caller.ID)
}
