package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/policy"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

// SettingsService manages the site configuration singleton and the
// audit-log reader.
type SettingsService struct {
	Settings repository.SettingsRepository
	Audit    repository.AuditLogRepository
	Logger   *logrus.Logger
}

func NewSettingsService(settings repository.SettingsRepository, audit repository.AuditLogRepository, logger *logrus.Logger) *SettingsService {
	return &SettingsService{Settings: settings, Audit: audit, Logger: logger}
}

// Get returns the singleton, falling back to the hardcoded defaults when
// no row exists yet so the settings page never fails.
func (s *SettingsService) Get(ctx context.Context) (*entity.SiteSettings, error) {
	cfg, err := s.Settings.Get(ctx)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return entity.DefaultSiteSettings(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Update upserts the singleton row. Admin only.
func (s *SettingsService) Update(ctx context.Context, caller *policy.Caller, cfg *entity.SiteSettings) (*entity.SiteSettings, error) {
	if !policy.CanModerate(caller) {
		return nil, apperr.ErrForbidden
	}
	if cfg.Name == "" {
		return nil, apperr.Validation("name", "is required")
	}
	if err := s.Settings.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	auditor{Repo: s.Audit, Logger: s.Logger}.record(ctx, caller, "settings_update",
		fmt.Sprintf("updated site settings (maintenance=%t)", cfg.MaintenanceMode))
	return cfg, nil
}

// ListAuditEntries returns the newest admin actions. Admin only.
func (s *SettingsService) ListAuditEntries(ctx context.Context, caller *policy.Caller, limit int) ([]*entity.AuditLogEntry, error) {
	if !policy.CanModerate(caller) {
		return nil, apperr.ErrForbidden
	}
	return s.Audit.ListRecent(ctx, limit)
}
