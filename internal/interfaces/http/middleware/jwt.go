package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/emprendia/backend/internal/infrastructure/auth"
	"github.com/emprendia/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context keys for authenticated request data
const (
	ContextKeyClaims   = "jwt_claims"
	ContextKeyUserID   = "jwt_user_id"
	ContextKeyTenantID = "jwt_tenant_id"
	ContextKeyEmail    = "jwt_email"
)

// JWTMiddlewareConfig configures the JWT authentication middleware
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService

	// TokenBlacklist is optional; when set, revoked tokens are rejected
	TokenBlacklist auth.TokenBlacklist

	// SkipPaths lists exact paths that bypass authentication
	SkipPaths []string

	// SkipPathPrefixes lists path prefixes that bypass authentication
	SkipPathPrefixes []string

	Logger *zap.Logger
}

// JWTAuth returns a middleware that authenticates requests with a Bearer
// access token. The tenant id is taken from the verified claims only and is
// the sole source of tenant identity downstream.
func JWTAuth(config JWTMiddlewareConfig) gin.HandlerFunc {
	skipPaths := make(map[string]bool, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skipPaths[p] = true
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipPaths[path] {
			c.Next()
			return
		}
		for _, prefix := range config.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			handleAuthError(c, err)
			return
		}

		claims, err := config.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			handleAuthError(c, err)
			return
		}

		if config.TokenBlacklist != nil && claims.ID != "" {
			blacklisted, err := config.TokenBlacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// fail open so an unavailable blacklist does not take the API down
				if config.Logger != nil {
					config.Logger.Warn("token blacklist check failed",
						zap.Error(err),
						zap.String("path", path),
					)
				}
			} else if blacklisted {
				handleAuthError(c, auth.ErrTokenBlacklisted)
				return
			}
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyTenantID, claims.TenantID)
		c.Set(ContextKeyEmail, claims.Email)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", auth.ErrInvalidToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", auth.ErrInvalidToken
	}

	return parts[1], nil
}

func handleAuthError(c *gin.Context, err error) {
	code := "INVALID_TOKEN"
	message := "Invalid authentication token"

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code = "TOKEN_EXPIRED"
		message = "Authentication token has expired"
	case errors.Is(err, auth.ErrInvalidTokenType):
		code = "INVALID_TOKEN_TYPE"
		message = "Wrong token type for this operation"
	case errors.Is(err, auth.ErrTokenBlacklisted):
		code = "TOKEN_REVOKED"
		message = "Authentication token has been revoked"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}

// GetJWTClaims returns the validated claims stored by JWTAuth
func GetJWTClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

// GetJWTTenantID returns the authenticated tenant id
func GetJWTTenantID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextKeyTenantID)
	if !exists {
		return uuid.Nil, false
	}
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetJWTUserID returns the authenticated user id
func GetJWTUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetJWTEmail returns the authenticated user's email
func GetJWTEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyEmail)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
