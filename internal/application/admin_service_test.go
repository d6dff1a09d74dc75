package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
)

func newAdminFixture(t *testing.T) (*AdminService, *fakeUserRepo, *fakeRecipeRepo, *fakeAuditRepo) {
	t.Helper()
	users := newFakeUserRepo()
	recipes := newFakeRecipeRepo()
	saved := newFakeSavedRepo(recipes)
	audit := &fakeAuditRepo{}
	return NewAdminService(users, recipes, saved, audit, nil, nil), users, recipes, audit
}

func seedUser(t *testing.T, users *fakeUserRepo, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "hash", Name: "User", Role: entity.RoleUser, Status: entity.StatusActive}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestListUsersStripsHashes(t *testing.T) {
	s, users, _, _ := newAdminFixture(t)
	seedUser(t, users, "a@example.com")
	seedUser(t, users, "b@example.com")

	_, err := s.ListUsers(context.Background(), owner)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	out, err := s.ListUsers(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, u := range out {
		assert.Empty(t, u.Password)
	}
}

func TestSetRole(t *testing.T) {
	s, users, _, audit := newAdminFixture(t)
	u := seedUser(t, users, "a@example.com")
	ctx := context.Background()

	_, err := s.SetRole(ctx, owner, u.ID, entity.RoleAdmin)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = s.SetRole(ctx, admin, u.ID, "SUPERUSER")
	_, ok := apperr.IsValidation(err)
	assert.True(t, ok)

	upd, err := s.SetRole(ctx, admin, u.ID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, upd.Role)
	assert.Equal(t, []string{"user_set_role"}, audit.actions())

	_, err = s.SetRole(ctx, admin, "user-999", entity.RoleAdmin)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSetStatus(t *testing.T) {
	s, users, _, audit := newAdminFixture(t)
	u := seedUser(t, users, "a@example.com")
	ctx := context.Background()

	_, err := s.SetStatus(ctx, admin, u.ID, "SUSPENDED")
	_, ok := apperr.IsValidation(err)
	assert.True(t, ok)

	upd, err := s.SetStatus(ctx, admin, u.ID, entity.StatusBanned)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusBanned, upd.Status)

	upd, err = s.SetStatus(ctx, admin, u.ID, entity.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, upd.Status)

	assert.Equal(t, []string{"user_set_status", "user_set_status"}, audit.actions())
}

func TestGetStats(t *testing.T) {
	s, users, recipes, _ := newAdminFixture(t)
	ctx := context.Background()

	seedUser(t, users, "a@example.com")
	seedUser(t, users, "b@example.com")

	recipeSvc := newRecipeService(recipes, nil)
	rec := mustCreateRecipe(t, recipeSvc, owner, validInput())

	in := validInput()
	in.Category = "Dessert"
	mustCreateRecipe(t, recipeSvc, owner, in)

	require.NoError(t, recipes.saved.Save(ctx, "user-2", rec.ID))

	_, err := s.GetStats(ctx, owner)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	st, err := s.GetStats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.UserCount)
	assert.Equal(t, int64(2), st.RecipeCount)
	assert.Equal(t, int64(1), st.SaveCount)
	assert.Len(t, st.RecentRecipes, 2)
	assert.Equal(t, int64(1), st.CategoryCounts["MAKANAN_UTAMA"])
	assert.Equal(t, int64(1), st.CategoryCounts["DESSERT"])
}
