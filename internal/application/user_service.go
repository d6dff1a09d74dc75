package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/policy"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
	"github.com/recipeshare/recipeshare/pkg/helpers"
)

// UserService implements the profile surface: own profile reads and edits,
// the caller's own recipes, and image uploads.
type UserService struct {
	Users     repository.UserRepository
	Recipes   repository.RecipeRepository
	GCS       *storage.Client
	GCSBucket string
	Redis     *redis.Client
	Logger    *logrus.Logger
}

func NewUserService(users repository.UserRepository, recipes repository.RecipeRepository, gcs *storage.Client, gcsBucket string, rdb *redis.Client, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Recipes: recipes, GCS: gcs, GCSBucket: gcsBucket, Redis: rdb, Logger: logger}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Password = ""
	return u, nil
}

type UpdateProfileInput struct {
	Name     string
	ImageURL string
}

// UpdateProfile edits the caller's display name and profile image, and
// refreshes the session hash so renewed sessions carry the new claims.
func (s *UserService) UpdateProfile(ctx context.Context, caller *policy.Caller, in UpdateProfileInput) (*entity.User, error) {
	if caller == nil {
		return nil, apperr.ErrUnauthenticated
	}
	u, err := s.Users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.ImageURL != "" {
		u.ImageURL = in.ImageURL
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		key := helpers.SessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"name":       u.Name,
			"image_url":  u.ImageURL,
			"updated_at": nowRFC3339(),
		})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	u.Password = ""
	return u, nil
}

// ListOwnRecipes returns the caller's recipes, newest first.
func (s *UserService) ListOwnRecipes(ctx context.Context, caller *policy.Caller) ([]*entity.Recipe, error) {
	if caller == nil {
		return nil, apperr.ErrUnauthenticated
	}
	return s.Recipes.List(ctx, repository.RecipeFilter{AuthorID: caller.ID})
}

// UploadImage stores an uploaded image in GCS and returns its public URL.
// Content is not validated beyond what the form layer enforces.
func (s *UserService) UploadImage(ctx context.Context, caller *policy.Caller, r io.Reader, filename, contentType string) (string, error) {
	if caller == nil {
		return "", apperr.ErrUnauthenticated
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("uploads", caller.ID, id+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}
