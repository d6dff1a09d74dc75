package application

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/policy"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
	"github.com/recipeshare/recipeshare/pkg/helpers"
)

// AdminService implements user management and the dashboard stats view.
type AdminService struct {
	Users   repository.UserRepository
	Recipes repository.RecipeRepository
	Saved   repository.SavedRecipeRepository
	Audit   repository.AuditLogRepository
	Redis   *redis.Client
	Logger  *logrus.Logger
}

func NewAdminService(users repository.UserRepository, recipes repository.RecipeRepository, saved repository.SavedRecipeRepository, audit repository.AuditLogRepository, rdb *redis.Client, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Recipes: recipes, Saved: saved, Audit: audit, Redis: rdb, Logger: logger}
}

func (s *AdminService) auditor() auditor {
	return auditor{Repo: s.Audit, Logger: s.Logger}
}

// ListUsers returns all identities for the admin table. The password hash
// is stripped before the result leaves the service.
func (s *AdminService) ListUsers(ctx context.Context, caller *policy.Caller) ([]*entity.User, error) {
	if !policy.CanModerate(caller) {
		return nil, apperr.ErrForbidden
	}
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

func (s *AdminService) SetRole(ctx context.Context, caller *policy.Caller, userID string, role entity.Role) (*entity.User, error) {
	if !policy.CanModerate(caller) {
		return nil, apperr.ErrForbidden
	}
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return nil, apperr.Validation("role", "must be one of: USER, ADMIN")
	}
	u, err := s.Users.SetRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	u.Password = ""
	s.auditor().record(ctx, caller, "user_set_role", fmt.Sprintf("set role of %s to %s", u.Email, role))
	return u, nil
}

// SetStatus changes an account's status. Banning revokes the live Redis
// session so the ban takes effect on the next request, not the next login.
func (s *AdminService) SetStatus(ctx context.Context, caller *policy.Caller, userID string, status entity.UserStatus) (*entity.User, error) {
	if !policy.CanModerate(caller) {
		return nil, apperr.ErrForbidden
	}
	if status != entity.StatusActive && status != entity.StatusBanned {
		return nil, apperr.Validation("status", "must be one of: ACTIVE, BANNED")
	}
	u, err := s.Users.SetStatus(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	u.Password = ""
	if status == entity.StatusBanned && s.Redis != nil {
		if err := s.Redis.Del(ctx, helpers.SessionKey(userID)).Err(); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("session revoke failed")
		}
	}
	s.auditor().record(ctx, caller, "user_set_status", fmt.Sprintf("set status of %s to %s", u.Email, status))
	return u, nil
}

// Stats is the admin dashboard summary.
type Stats struct {
	UserCount      int64
	RecipeCount    int64
	SaveCount      int64
	RecentRecipes  []*entity.Recipe
	CategoryCounts map[string]int64
}

// GetStats gathers counts and recent activity. The reads are independent;
// a failure in any one fails the whole view.
func (s *AdminService) GetStats(ctx context.Context, caller *policy.Caller) (*Stats, error) {
	if !policy.CanModerate(caller) {
		return nil, apperr.ErrForbidden
	}
	st := &Stats{}
	var err error
	if st.UserCount, err = s.Users.Count(ctx); err != nil {
		return nil, err
	}
	if st.RecipeCount, err = s.Recipes.Count(ctx); err != nil {
		return nil, err
	}
	if st.SaveCount, err = s.Saved.Count(ctx); err != nil {
		return nil, err
	}
	recent, err := s.Recipes.List(ctx, repository.RecipeFilter{})
	if err != nil {
		return nil, err
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}
	st.RecentRecipes = recent
	if st.CategoryCounts, err = s.Recipes.CountByCategory(ctx); err != nil {
		return nil, err
	}
	return st, nil
}
