package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// BlacklistChecker reports whether a session token has been revoked
type BlacklistChecker interface {
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

// RedisBlacklist checks revoked tokens against redis. A nil client
// disables the check (tokens then only expire naturally).
type RedisBlacklist struct {
	Client *redis.Client
}

// BlacklistKeyPrefix namespaces revoked token keys in redis
const BlacklistKeyPrefix = "auth:blacklist:"

// IsBlacklisted implements BlacklistChecker
func (b *RedisBlacklist) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	if b == nil || b.Client == nil {
		return false, nil
	}
	n, err := b.Client.Exists(ctx, BlacklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Auth returns a middleware that validates admin session JWTs and rejects
// revoked tokens. The admin ID and token are stored in the gin context
// for downstream handlers.
func Auth(jwtSecret string, blacklist BlacklistChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		sub, err := claims.GetSubject()
		if err != nil {
			abortUnauthorized(c, "Invalid token subject")
			return
		}
		adminID, err := uuid.Parse(sub)
		if err != nil {
			abortUnauthorized(c, "Invalid token subject")
			return
		}

		if blacklist != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			// Redis being down must not lock admins out
			if revoked, err := blacklist.IsBlacklisted(ctx, tokenString); err == nil && revoked {
				abortUnauthorized(c, "Token has been revoked")
				return
			}
		}

		c.Set("admin_id", adminID)
		c.Set("jwtToken", tokenString)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
		"message": message,
	})
	c.Abort()
}
