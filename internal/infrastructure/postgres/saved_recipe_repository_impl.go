package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

type SavedRecipeRepository struct {
	pool *pgxpool.Pool
}

func NewSavedRecipeRepository(pool *pgxpool.Pool) *SavedRecipeRepository {
	return &SavedRecipeRepository{pool: pool}
}

// Save inserts the pair. The primary key on (user_id, recipe_id) is the
// arbiter under concurrent saves: exactly one insert wins, the rest come
// back as ErrConflict.
func (r *SavedRecipeRepository) Save(ctx context.Context, userID, recipeID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO saved_recipes (user_id, recipe_id) VALUES ($1, $2)
	`, userID, recipeID)
	return translate(err)
}

// Unsave is idempotent: deleting an absent pair succeeds.
func (r *SavedRecipeRepository) Unsave(ctx context.Context, userID, recipeID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM saved_recipes WHERE user_id = $1 AND recipe_id = $2
	`, userID, recipeID)
	return translate(err)
}

func (r *SavedRecipeRepository) ListRecipes(ctx context.Context, userID string) ([]*entity.Recipe, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+recipeColumns+`
		FROM saved_recipes s
		JOIN recipes r ON r.id = s.recipe_id
		JOIN users u ON u.id = r.author_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
	`, userID)
	if err != nil {
		return nil, translate(err)
	}
	return collectRecipes(rows)
}

func (r *SavedRecipeRepository) ListRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT recipe_id FROM saved_recipes WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, translate(err)
		}
		ids = append(ids, id)
	}
	return ids, translate(rows.Err())
}

func (r *SavedRecipeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM saved_recipes`).Scan(&n)
	return n, translate(err)
}

var _ repository.SavedRecipeRepository = (*SavedRecipeRepository)(nil)
