package repository

import (
	"context"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
)

// SettingsRepository persists the settings singleton. Get returns
// apperr.ErrNotFound when no row exists yet; Upsert creates or replaces
// the row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.SiteSettings, error)
	Upsert(ctx context.Context, s *entity.SiteSettings) error
}

// AuditLogRepository is the append-only admin action log.
type AuditLogRepository interface {
	Append(ctx context.Context, e *entity.AuditLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error)
}
