package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
)

func TestCategoryCRUD(t *testing.T) {
	audit := &fakeAuditRepo{}
	s := NewCategoryService(newFakeCategoryRepo(), audit, nil)
	ctx := context.Background()

	_, err := s.Create(ctx, owner, "Sarapan", "egg")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = s.Create(ctx, admin, "   ", "")
	_, ok := apperr.IsValidation(err)
	assert.True(t, ok)

	c, err := s.Create(ctx, admin, "  Sarapan  ", "egg")
	require.NoError(t, err)
	assert.Equal(t, "Sarapan", c.Name, "display name is trimmed, not normalized")

	upd, err := s.Update(ctx, admin, c.ID, "Sarapan Pagi", "sunrise")
	require.NoError(t, err)
	assert.Equal(t, "Sarapan Pagi", upd.Name)

	require.NoError(t, s.Delete(ctx, admin, c.ID))
	assert.ErrorIs(t, s.Delete(ctx, admin, c.ID), apperr.ErrNotFound)

	assert.Equal(t, []string{"category_create", "category_update", "category_delete"}, audit.actions())
}

func TestCategoryListIsPublic(t *testing.T) {
	s := NewCategoryService(newFakeCategoryRepo(), &fakeAuditRepo{}, nil)
	ctx := context.Background()

	_, err := s.Create(ctx, admin, "Minuman", "")
	require.NoError(t, err)
	_, err = s.Create(ctx, admin, "Camilan", "")
	require.NoError(t, err)

	out, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Camilan", out[0].Name, "sorted by name ascending")
}

func TestCategoryDeleteLeavesRecipesTagged(t *testing.T) {
	recipes := newFakeRecipeRepo()
	recipeSvc := newRecipeService(recipes, nil)
	catSvc := NewCategoryService(newFakeCategoryRepo(), &fakeAuditRepo{}, nil)
	ctx := context.Background()

	c, err := catSvc.Create(ctx, admin, "Makanan Utama", "")
	require.NoError(t, err)
	rec := mustCreateRecipe(t, recipeSvc, owner, validInput())

	require.NoError(t, catSvc.Delete(ctx, admin, c.ID))

	got, err := recipeSvc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "MAKANAN_UTAMA", got.Category, "denormalized tag survives category deletion")
}
