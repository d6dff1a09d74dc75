package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/policy"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

// RecipeService implements the catalog operations: public reads, owner
// mutations, and admin moderation.
type RecipeService struct {
	Recipes repository.RecipeRepository
	Audit   repository.AuditLogRepository
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewRecipeService(recipes repository.RecipeRepository, audit repository.AuditLogRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *RecipeService {
	return &RecipeService{Recipes: recipes, Audit: audit, Logger: logger, ES: es, ESIndex: esIndex}
}

func (s *RecipeService) auditor() auditor {
	return auditor{Repo: s.Audit, Logger: s.Logger}
}

// RecipeInput is the full field set an owner submits on create and edit.
// Ingredients and Instructions arrive as raw entry lists; blank entries are
// filtered before persistence.
type RecipeInput struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions []string
	ImageURL     string
	Difficulty   entity.Difficulty
	Category     string
}

func filterBlank(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			out = append(out, e)
		}
	}
	return out
}

// validate filters blank entries and checks the remaining field set. A
// submission whose ingredients or instructions are all blank fails; a mix
// of blank and non-blank succeeds with only the non-blank subset.
func (in *RecipeInput) validate() (map[string]string, []string, []string) {
	fields := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "is required"
	}
	if !in.Difficulty.Valid() {
		fields["difficulty"] = "must be one of: MUDAH, SEDANG, SULIT"
	}
	ingredients := filterBlank(in.Ingredients)
	if len(ingredients) == 0 {
		fields["ingredients"] = "at least one non-blank ingredient is required"
	}
	steps := filterBlank(in.Instructions)
	if len(steps) == 0 {
		fields["instructions"] = "at least one non-blank step is required"
	}
	return fields, ingredients, steps
}

// List returns the public catalog, newest first, optionally narrowed by
// category and title substring.
func (s *RecipeService) List(ctx context.Context, f repository.RecipeFilter) ([]*entity.Recipe, error) {
	return s.Recipes.List(ctx, f)
}

func (s *RecipeService) Get(ctx context.Context, id string) (*entity.Recipe, error) {
	return s.Recipes.GetByID(ctx, id)
}

// Create persists a new recipe. The author is always the caller resolved
// from the session, never client input.
func (s *RecipeService) Create(ctx context.Context, caller *policy.Caller, in RecipeInput) (*entity.Recipe, error) {
	if caller == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if caller.Status == entity.StatusBanned {
		return nil, apperr.ErrAccountBanned
	}
	fields, ingredients, steps := in.validate()
	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	rec := &entity.Recipe{
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Ingredients:  ingredients,
		Instructions: entity.JoinSteps(steps),
		ImageURL:     in.ImageURL,
		Difficulty:   in.Difficulty,
		Category:     entity.NormalizeCategoryName(in.Category),
		AuthorID:     caller.ID,
	}
	if err := s.Recipes.Create(ctx, rec); err != nil {
		return nil, err
	}
	rec.Author = &entity.AuthorSummary{ID: caller.ID, Name: caller.Name, Email: caller.Email}
	s.indexRecipe(ctx, rec)
	return rec, nil
}

// Update replaces the full field set. The existence check runs before the
// ownership check, so an authenticated non-owner gets Forbidden rather
// than NotFound.
func (s *RecipeService) Update(ctx context.Context, caller *policy.Caller, id string, in RecipeInput) (*entity.Recipe, error) {
	if caller == nil {
		return nil, apperr.ErrUnauthenticated
	}
	rec, err := s.Recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(caller, rec.AuthorID) {
		return nil, apperr.ErrForbidden
	}
	fields, ingredients, steps := in.validate()
	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	rec.Title = strings.TrimSpace(in.Title)
	rec.Description = in.Description
	rec.Ingredients = ingredients
	rec.Instructions = entity.JoinSteps(steps)
	rec.ImageURL = in.ImageURL
	rec.Difficulty = in.Difficulty
	rec.Category = entity.NormalizeCategoryName(in.Category)
	if err := s.Recipes.Update(ctx, rec); err != nil {
		return nil, err
	}
	s.indexRecipe(ctx, rec)
	return rec, nil
}

// Delete removes a recipe permanently, ledger rows included, under the same
// owner-or-admin rule as Update.
func (s *RecipeService) Delete(ctx context.Context, caller *policy.Caller, id string) error {
	if caller == nil {
		return apperr.ErrUnauthenticated
	}
	rec, err := s.Recipes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanModify(caller, rec.AuthorID) {
		return apperr.ErrForbidden
	}
	if err := s.Recipes.Delete(ctx, id); err != nil {
		return err
	}
	if caller.IsAdmin() && caller.ID != rec.AuthorID {
		s.auditor().record(ctx, caller, "recipe_delete", fmt.Sprintf("deleted recipe %q (%s)", rec.Title, rec.ID))
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

// SetFeatured toggles the featured flag. Admin only, ownership irrelevant.
func (s *RecipeService) SetFeatured(ctx context.Context, caller *policy.Caller, id string, featured bool) (*entity.Recipe, error) {
	return s.Moderate(ctx, caller, id, repository.ModerationUpdate{IsFeatured: &featured})
}

// Moderate applies the restricted admin field set (title, is_featured).
func (s *RecipeService) Moderate(ctx context.Context, caller *policy.Caller, id string, upd repository.ModerationUpdate) (*entity.Recipe, error) {
	if !policy.CanModerate(caller) {
		return nil, apperr.ErrForbidden
	}
	rec, err := s.Recipes.ApplyModeration(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.auditor().record(ctx, caller, "recipe_moderate", fmt.Sprintf("updated recipe %s", id))
	s.indexRecipe(ctx, rec)
	return rec, nil
}

// BulkDelete removes the given ids and reports how many rows were actually
// deleted so moderation tooling can detect partial application.
func (s *RecipeService) BulkDelete(ctx context.Context, caller *policy.Caller, ids []string) (int64, error) {
	if !policy.CanModerate(caller) {
		return 0, apperr.ErrForbidden
	}
	if len(ids) == 0 {
		return 0, apperr.Validation("ids", "is required")
	}
	n, err := s.Recipes.BulkDelete(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.auditor().record(ctx, caller, "recipe_bulk_delete", fmt.Sprintf("deleted %d of %d recipes", n, len(ids)))
	for _, id := range ids {
		s.deleteFromIndex(ctx, id)
	}
	return n, nil
}

// ListForModeration returns the slim admin table projection.
func (s *RecipeService) ListForModeration(ctx context.Context, caller *policy.Caller) ([]*repository.ModerationRow, error) {
	if !policy.CanModerate(caller) {
		return nil, apperr.ErrForbidden
	}
	return s.Recipes.ListForModeration(ctx)
}

// indexRecipe pushes the latest document to Elasticsearch, best effort.
func (s *RecipeService) indexRecipe(ctx context.Context, rec *entity.Recipe) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          rec.ID,
		"title":       rec.Title,
		"description": rec.Description,
		"category":    rec.Category,
		"difficulty":  string(rec.Difficulty),
		"author_id":   rec.AuthorID,
		"created_at":  rec.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: rec.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("recipe_id", rec.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("recipe_id", rec.ID).Warn("es index response error")
	}
}

func (s *RecipeService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("recipe_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search queries the title/description index. Without a configured ES
// client it degrades to a SQL title match.
func (s *RecipeService) Search(ctx context.Context, q string, size int) ([]*entity.Recipe, error) {
	if s.ES == nil || s.ESIndex == "" {
		return s.Recipes.List(ctx, repository.RecipeFilter{Query: q})
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, apperr.ErrUnavailable
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]*entity.Recipe, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		rec, err := s.Recipes.GetByID(ctx, h.ID)
		if err != nil {
			continue // index can lag behind deletes
		}
		out = append(out, rec)
	}
	return out, nil
}
