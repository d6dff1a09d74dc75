package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

type AuditLogRepository struct {
	pool *pgxpool.Pool
}

func NewAuditLogRepository(pool *pgxpool.Pool) *AuditLogRepository {
	return &AuditLogRepository{pool: pool}
}

func (r *AuditLogRepository) Append(ctx context.Context, e *entity.AuditLogEntry) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO audit_logs (action, admin_name, details)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, created_at
	`, e.Action, e.AdminName, e.Details)
	return translate(row.Scan(&e.ID, &e.CreatedAt))
}

func (r *AuditLogRepository) ListRecent(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, action, admin_name, COALESCE(details, ''), created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]*entity.AuditLogEntry, 0, limit)
	for rows.Next() {
		e := &entity.AuditLogEntry{}
		if err := rows.Scan(&e.ID, &e.Action, &e.AdminName, &e.Details, &e.CreatedAt); err != nil {
			return nil, translate(err)
		}
		out = append(out, e)
	}
	return out, translate(rows.Err())
}

var _ repository.AuditLogRepository = (*AuditLogRepository)(nil)
