package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
	"github.com/recipeshare/recipeshare/internal/domain/policy"
	"github.com/recipeshare/recipeshare/pkg/helpers"
	"github.com/recipeshare/recipeshare/pkg/response"
)

// CtxCallerKey is the Gin context key holding the resolved *policy.Caller.
const CtxCallerKey = "caller"

// Caller returns the caller resolved by Auth or OptionalAuth, or nil.
func Caller(c *gin.Context) *policy.Caller {
	if v, ok := c.Get(CtxCallerKey); ok {
		if caller, ok := v.(*policy.Caller); ok {
			return caller
		}
	}
	return nil
}

func resolveCaller(c *gin.Context, rdb *redis.Client, jwt *helpers.JWTManager) *policy.Caller {
	token, err := c.Cookie("access_token")
	if err != nil || token == "" {
		return nil
	}
	claims, err := jwt.ParseAccessToken(token)
	if err != nil {
		return nil
	}

	// The session hash is the server-side source of truth; a revoked
	// session makes the token worthless even before it expires.
	key := helpers.SessionKey(claims.UserID)
	data, err := rdb.HGetAll(c.Request.Context(), key).Result()
	if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
		return nil
	}

	return &policy.Caller{
		ID:     data["user_id"],
		Email:  data["email"],
		Name:   data["name"],
		Role:   entity.Role(data["role"]),
		Status: entity.UserStatus(data["status"]),
	}
}

// Auth validates the access token against the Redis session and injects
// the caller into the context. Unauthenticated requests are rejected with
// 401; a resolved-but-banned caller gets 403, distinctly.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := resolveCaller(c, rdb, jwt)
		if caller == nil {
			response.Abort(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		if caller.Status == entity.StatusBanned {
			response.Abort(c, http.StatusForbidden, "account banned", nil)
			return
		}
		c.Set(CtxCallerKey, caller)
		c.Set("userID", caller.ID)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid session exists and
// continues anonymously otherwise. Used by public pages that personalize
// opportunistically (e.g. saved-recipe membership on the catalog).
func OptionalAuth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller := resolveCaller(c, rdb, jwt); caller != nil && caller.Status != entity.StatusBanned {
			c.Set(CtxCallerKey, caller)
			c.Set("userID", caller.ID)
		}
		c.Next()
	}
}

// RequireAdmin rejects callers without the ADMIN role. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.CanModerate(Caller(c)) {
			response.Abort(c, http.StatusForbidden, "admin role required", nil)
			return
		}
		c.Next()
	}
}
