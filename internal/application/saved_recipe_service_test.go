package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
)

func newSavedService(t *testing.T) (*SavedRecipeService, *entity.Recipe) {
	t.Helper()
	recipes := newFakeRecipeRepo()
	saved := newFakeSavedRepo(recipes)
	recipeSvc := newRecipeService(recipes, nil)
	rec := mustCreateRecipe(t, recipeSvc, owner, validInput())
	return NewSavedRecipeService(saved, recipes, nil), rec
}

func TestSaveRecipe(t *testing.T) {
	s, rec := newSavedService(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, other, rec.ID))

	ids, err := s.ListRecipeIDs(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, []string{rec.ID}, ids)
}

func TestSaveRequiresAuth(t *testing.T) {
	s, rec := newSavedService(t)
	assert.ErrorIs(t, s.Save(context.Background(), nil, rec.ID), apperr.ErrUnauthenticated)
}

func TestSaveUnknownRecipe(t *testing.T) {
	s, _ := newSavedService(t)
	assert.ErrorIs(t, s.Save(context.Background(), other, "recipe-999"), apperr.ErrNotFound)
}

func TestSaveTwiceConflicts(t *testing.T) {
	s, rec := newSavedService(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, other, rec.ID))
	assert.ErrorIs(t, s.Save(ctx, other, rec.ID), apperr.ErrConflict)
}

func TestUnsaveIsIdempotent(t *testing.T) {
	s, rec := newSavedService(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, other, rec.ID))
	require.NoError(t, s.Unsave(ctx, other, rec.ID))
	require.NoError(t, s.Unsave(ctx, other, rec.ID), "unsaving twice is a no-op")

	ids, err := s.ListRecipeIDs(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListRecipeIDsAnonymous(t *testing.T) {
	s, _ := newSavedService(t)

	ids, err := s.ListRecipeIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, ids, "anonymous callers get an empty set, not an error")
	assert.Empty(t, ids)
}

func TestListSavedRecipes(t *testing.T) {
	s, rec := newSavedService(t)
	ctx := context.Background()

	_, err := s.ListRecipes(ctx, nil)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	require.NoError(t, s.Save(ctx, other, rec.ID))
	out, err := s.ListRecipes(ctx, other)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, rec.ID, out[0].ID)
}
