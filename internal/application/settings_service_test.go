package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
)

func TestGetSettingsDefaults(t *testing.T) {
	s := NewSettingsService(&fakeSettingsRepo{}, &fakeAuditRepo{}, nil)

	cfg, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.SettingsID, cfg.ID)
	assert.Equal(t, "RecipeShare", cfg.Name)
	assert.Equal(t, "admin@recipeshare.com", cfg.ContactEmail)
	assert.False(t, cfg.MaintenanceMode)
}

func TestUpdateSettings(t *testing.T) {
	repo := &fakeSettingsRepo{}
	audit := &fakeAuditRepo{}
	s := NewSettingsService(repo, audit, nil)
	ctx := context.Background()

	in := &entity.SiteSettings{ID: entity.SettingsID, Name: "ResepKita", MaintenanceMode: true}

	_, err := s.Update(ctx, owner, in)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = s.Update(ctx, admin, &entity.SiteSettings{ID: entity.SettingsID})
	_, ok := apperr.IsValidation(err)
	assert.True(t, ok, "name is required")

	_, err = s.Update(ctx, admin, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"settings_update"}, audit.actions())

	cfg, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ResepKita", cfg.Name)
	assert.True(t, cfg.MaintenanceMode)
}

func TestListAuditEntries(t *testing.T) {
	audit := &fakeAuditRepo{}
	s := NewSettingsService(&fakeSettingsRepo{}, audit, nil)
	ctx := context.Background()

	require.NoError(t, audit.Append(ctx, &entity.AuditLogEntry{Action: "a", AdminName: "Admin"}))
	require.NoError(t, audit.Append(ctx, &entity.AuditLogEntry{Action: "b", AdminName: "Admin"}))

	_, err := s.ListAuditEntries(ctx, owner, 10)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	entries, err := s.ListAuditEntries(ctx, admin, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Action, "newest first")
}
