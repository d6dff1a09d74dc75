package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/policy"
)

func newUserFixture(t *testing.T) (*UserService, *policy.Caller) {
	t.Helper()
	users := newFakeUserRepo()
	recipes := newFakeRecipeRepo()
	u := seedUser(t, users, "budi@example.com")
	caller := &policy.Caller{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, Status: u.Status}
	return NewUserService(users, recipes, nil, "", nil, nil), caller
}

func TestGetProfileStripsHash(t *testing.T) {
	s, caller := newUserFixture(t)

	u, err := s.GetProfile(context.Background(), caller.ID)
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", u.Email)
	assert.Empty(t, u.Password)

	_, err = s.GetProfile(context.Background(), "user-999")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	s, caller := newUserFixture(t)
	ctx := context.Background()

	_, err := s.UpdateProfile(ctx, nil, UpdateProfileInput{Name: "X"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	u, err := s.UpdateProfile(ctx, caller, UpdateProfileInput{Name: "Budi Baru"})
	require.NoError(t, err)
	assert.Equal(t, "Budi Baru", u.Name)

	// Empty fields are left untouched.
	u, err = s.UpdateProfile(ctx, caller, UpdateProfileInput{ImageURL: "https://img.example/p.png"})
	require.NoError(t, err)
	assert.Equal(t, "Budi Baru", u.Name)
	assert.Equal(t, "https://img.example/p.png", u.ImageURL)
}

func TestListOwnRecipes(t *testing.T) {
	users := newFakeUserRepo()
	recipes := newFakeRecipeRepo()
	s := NewUserService(users, recipes, nil, "", nil, nil)
	recipeSvc := newRecipeService(recipes, nil)
	ctx := context.Background()

	mustCreateRecipe(t, recipeSvc, owner, validInput())
	mustCreateRecipe(t, recipeSvc, other, validInput())

	_, err := s.ListOwnRecipes(ctx, nil)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	out, err := s.ListOwnRecipes(ctx, owner)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, owner.ID, out[0].AuthorID)
}

func TestUploadImageRequiresAuth(t *testing.T) {
	s, _ := newUserFixture(t)

	_, err := s.UploadImage(context.Background(), nil, strings.NewReader("img"), "p.png", "image/png")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestUploadImageNeedsStorage(t *testing.T) {
	s, caller := newUserFixture(t)

	_, err := s.UploadImage(context.Background(), caller, strings.NewReader("img"), "p.png", "image/png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestAuditorFallsBackToEmail(t *testing.T) {
	audit := &fakeAuditRepo{}
	a := auditor{Repo: audit}
	caller := &policy.Caller{ID: "user-9", Email: "admin@example.com", Role: entity.RoleAdmin}

	a.record(context.Background(), caller, "test_action", "details")
	entries, err := audit.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "admin@example.com", entries[0].AdminName)
}
