package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

type RecipeRepository struct {
	pool *pgxpool.Pool
}

func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

const recipeColumns = `
	r.id, r.title, COALESCE(r.description, ''), r.ingredients, r.instructions,
	COALESCE(r.image_url, ''), r.difficulty, r.category, r.is_featured, r.author_id,
	r.created_at, r.updated_at,
	u.id, COALESCE(u.name, ''), u.email, COALESCE(u.image_url, '')`

const recipeFrom = ` FROM recipes r JOIN users u ON u.id = r.author_id `

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	rec := &entity.Recipe{Author: &entity.AuthorSummary{}}
	if err := row.Scan(
		&rec.ID, &rec.Title, &rec.Description, &rec.Ingredients, &rec.Instructions,
		&rec.ImageURL, &rec.Difficulty, &rec.Category, &rec.IsFeatured, &rec.AuthorID,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.Author.ID, &rec.Author.Name, &rec.Author.Email, &rec.Author.ImageURL,
	); err != nil {
		return nil, translate(err)
	}
	return rec, nil
}

func collectRecipes(rows pgx.Rows) ([]*entity.Recipe, error) {
	defer rows.Close()
	out := make([]*entity.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, translate(rows.Err())
}

func (r *RecipeRepository) Create(ctx context.Context, rec *entity.Recipe) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO recipes (title, description, ingredients, instructions, image_url, difficulty, category, author_id)
		VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), $6, $7, $8)
		RETURNING id, is_featured, created_at, updated_at
	`, rec.Title, rec.Description, rec.Ingredients, rec.Instructions, rec.ImageURL,
		rec.Difficulty, rec.Category, rec.AuthorID)

	return translate(row.Scan(&rec.ID, &rec.IsFeatured, &rec.CreatedAt, &rec.UpdatedAt))
}

func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	return scanRecipe(r.pool.QueryRow(ctx, `SELECT`+recipeColumns+recipeFrom+`WHERE r.id = $1`, id))
}

func (r *RecipeRepository) List(ctx context.Context, f repository.RecipeFilter) ([]*entity.Recipe, error) {
	q := `SELECT` + recipeColumns + recipeFrom + `WHERE 1=1`
	args := []any{}
	if f.Category != "" {
		args = append(args, f.Category)
		q += ` AND r.category = $` + itoa(len(args))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		q += ` AND r.title ILIKE $` + itoa(len(args))
	}
	if f.AuthorID != "" {
		args = append(args, f.AuthorID)
		q += ` AND r.author_id = $` + itoa(len(args))
	}
	q += ` ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, translate(err)
	}
	return collectRecipes(rows)
}

func (r *RecipeRepository) Update(ctx context.Context, rec *entity.Recipe) error {
	rec.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE recipes
		SET title = $1, description = NULLIF($2, ''), ingredients = $3, instructions = $4,
		    image_url = NULLIF($5, ''), difficulty = $6, category = $7, updated_at = $8
		WHERE id = $9
	`, rec.Title, rec.Description, rec.Ingredients, rec.Instructions, rec.ImageURL,
		rec.Difficulty, rec.Category, rec.UpdatedAt, rec.ID)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return translate(pgx.ErrNoRows)
	}
	return nil
}

// Delete removes the recipe and its ledger rows in a single transaction so
// a half-applied delete can never orphan bookmarks.
func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return translate(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM saved_recipes WHERE recipe_id = $1`, id); err != nil {
		return translate(err)
	}
	res, err := tx.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return translate(pgx.ErrNoRows)
	}
	return translate(tx.Commit(ctx))
}

func (r *RecipeRepository) ApplyModeration(ctx context.Context, id string, upd repository.ModerationUpdate) (*entity.Recipe, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE recipes
		SET title = COALESCE($1, title), is_featured = COALESCE($2, is_featured), updated_at = now()
		WHERE id = $3
	`, upd.Title, upd.IsFeatured, id)
	if err != nil {
		return nil, translate(err)
	}
	if res.RowsAffected() == 0 {
		return nil, translate(pgx.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *RecipeRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, translate(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM saved_recipes WHERE recipe_id = ANY($1)`, ids); err != nil {
		return 0, translate(err)
	}
	res, err := tx.Exec(ctx, `DELETE FROM recipes WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, translate(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, translate(err)
	}
	return res.RowsAffected(), nil
}

func (r *RecipeRepository) ListForModeration(ctx context.Context) ([]*repository.ModerationRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.title, r.category, r.is_featured, r.created_at,
		       COALESCE(u.name, ''), u.email
		FROM recipes r JOIN users u ON u.id = r.author_id
		ORDER BY r.created_at DESC
	`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]*repository.ModerationRow, 0)
	for rows.Next() {
		m := &repository.ModerationRow{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Category, &m.IsFeatured, &m.CreatedAt,
			&m.AuthorName, &m.AuthorEmail); err != nil {
			return nil, translate(err)
		}
		out = append(out, m)
	}
	return out, translate(rows.Err())
}

func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM recipes`).Scan(&n)
	return n, translate(err)
}

func (r *RecipeRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT category, count(*) FROM recipes GROUP BY category`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var cat string
		var n int64
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, translate(err)
		}
		out[cat] = n
	}
	return out, translate(rows.Err())
}

func itoa(n int) string { return strconv.Itoa(n) }

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
