package application

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/repository"
	"github.com/recipeshare/recipeshare/pkg/helpers"
)

const (
	minNameLen     = 2
	minPasswordLen = 6
)

// AuthService implements registration, credential authentication, and
// session/token issuance.
type AuthService struct {
	Users      repository.UserRepository
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	Logger     *logrus.Logger
	SessionTTL time.Duration
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, sessionTTL time.Duration) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Redis: rdb, Logger: logger, SessionTTL: sessionTTL}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Register validates input, hashes the password, and creates the identity.
// The returned user never carries the hash. A duplicate email surfaces as
// ErrConflict via the store's uniqueness constraint, so concurrent
// registrations cannot both win.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	fields := map[string]string{}
	if len(strings.TrimSpace(name)) < minNameLen {
		fields["name"] = "min length 2"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "must be a valid email"
	}
	if len(password) < minPasswordLen {
		fields["password"] = "min length 6"
	}
	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:    email,
		Password: hash,
		Name:     strings.TrimSpace(name),
		Role:     entity.RoleUser,
		Status:   entity.StatusActive,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	u.Password = ""
	return u, nil
}

// Authenticate validates email/password. An unknown email and an account
// without a stored hash fail identically, so callers cannot probe which
// addresses are registered. A banned account is only reported after the
// hash matches.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, apperr.ErrInvalidCredentials
	}
	if u.Password == "" {
		return nil, apperr.ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, apperr.ErrInvalidCredentials
	}
	if u.IsBanned() {
		return nil, apperr.ErrAccountBanned
	}
	return u, nil
}

// Login authenticates and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// IssueTokens generates access/refresh tokens and records a session in Redis.
// The session hash carries the claims the middleware resolves on each
// request; role and status are refreshed here on every renewal.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}

	if s.Redis != nil {
		key := helpers.SessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"image_url":  u.ImageURL,
			"role":       string(u.Role),
			"status":     string(u.Status),
			"sid":        sid,
			"created_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, s.SessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh rotates the session id and both tokens. The refresh token's sid
// must match the live session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, apperr.ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, apperr.ErrInvalidCredentials
	}
	if u.IsBanned() {
		return TokenPair{}, apperr.ErrAccountBanned
	}
	if s.Redis != nil {
		key := helpers.SessionKey(u.ID)
		data, rErr := s.Redis.HGetAll(ctx, key).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, apperr.ErrInvalidCredentials
		}
	}
	return s.IssueTokens(ctx, u)
}

// Logout drops the server-side session.
func (s *AuthService) Logout(ctx context.Context, userID string) {
	if s.Redis == nil || userID == "" {
		return
	}
	if err := s.Redis.Del(ctx, helpers.SessionKey(userID)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("session delete failed")
	}
}
