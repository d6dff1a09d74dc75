package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Get(ctx context.Context) (*entity.SiteSettings, error) {
	s := &entity.SiteSettings{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, COALESCE(description, ''), COALESCE(contact_email, ''), maintenance_mode, updated_at
		FROM system_settings WHERE id = $1
	`, entity.SettingsID).Scan(&s.ID, &s.Name, &s.Description, &s.ContactEmail, &s.MaintenanceMode, &s.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *entity.SiteSettings) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO system_settings (id, name, description, contact_email, maintenance_mode, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			contact_email = EXCLUDED.contact_email,
			maintenance_mode = EXCLUDED.maintenance_mode,
			updated_at = now()
		RETURNING updated_at
	`, entity.SettingsID, s.Name, s.Description, s.ContactEmail, s.MaintenanceMode)
	s.ID = entity.SettingsID
	return translate(row.Scan(&s.UpdatedAt))
}

var _ repository.SettingsRepository = (*SettingsRepository)(nil)
