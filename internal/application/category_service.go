package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/policy"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
)

// CategoryService implements the admin-managed taxonomy. Listing is
// public; create, update, and delete require the ADMIN role.
type CategoryService struct {
	Categories repository.CategoryRepository
	Audit      repository.AuditLogRepository
	Logger     *logrus.Logger
}

func NewCategoryService(categories repository.CategoryRepository, audit repository.AuditLogRepository, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Categories: categories, Audit: audit, Logger: logger}
}

func (s *CategoryService) auditor() auditor {
	return auditor{Repo: s.Audit, Logger: s.Logger}
}

// List returns all categories sorted by name ascending.
func (s *CategoryService) List(ctx context.Context) ([]*entity.Category, error) {
	return s.Categories.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, caller *policy.Caller, name, icon string) (*entity.Category, error) {
	if !policy.CanModerate(caller) {
		return nil, apperr.ErrForbidden
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("name", "is required")
	}
	c := &entity.Category{Name: strings.TrimSpace(name), Icon: icon}
	if err := s.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	s.auditor().record(ctx, caller, "category_create", fmt.Sprintf("created category %q", c.Name))
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, caller *policy.Caller, id, name, icon string) (*entity.Category, error) {
	if !policy.CanModerate(caller) {
		return nil, apperr.ErrForbidden
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("name", "is required")
	}
	c := &entity.Category{ID: id, Name: strings.TrimSpace(name), Icon: icon}
	if err := s.Categories.Update(ctx, c); err != nil {
		return nil, err
	}
	s.auditor().record(ctx, caller, "category_update", fmt.Sprintf("updated category %q (%s)", c.Name, id))
	return c, nil
}

// Delete removes the taxonomy node. Recipes tagged with the category's
// normalized name keep their string value.
func (s *CategoryService) Delete(ctx context.Context, caller *policy.Caller, id string) error {
	if !policy.CanModerate(caller) {
		return apperr.ErrForbidden
	}
	if err := s.Categories.Delete(ctx, id); err != nil {
		return err
	}
	s.auditor().record(ctx, caller, "category_delete", fmt.Sprintf("deleted category %s", id))
	return nil
}
