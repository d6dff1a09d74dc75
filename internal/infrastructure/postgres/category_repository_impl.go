package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO recipe_categories (name, icon)
		VALUES ($1, NULLIF($2, ''))
		RETURNING id, created_at
	`, c.Name, c.Icon)
	return translate(row.Scan(&c.ID, &c.CreatedAt))
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, COALESCE(icon, ''), created_at
		FROM recipe_categories
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]*entity.Category, 0)
	for rows.Next() {
		c := &entity.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.CreatedAt); err != nil {
			return nil, translate(err)
		}
		out = append(out, c)
	}
	return out, translate(rows.Err())
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE recipe_categories SET name = $1, icon = NULLIF($2, '')
		WHERE id = $3
	`, c.Name, c.Icon, c.ID)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return translate(pgx.ErrNoRows)
	}
	return nil
}

// Delete removes the taxonomy node only. Recipes tagged with the deleted
// category's name keep their string value (accepted drift).
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM recipe_categories WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return translate(pgx.ErrNoRows)
	}
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
