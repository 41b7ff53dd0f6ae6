package middleware

import (
	"context"
	"net/http"
	"strings"

	"therapy-clinic-api/internal/service"
	"therapy-clinic-api/pkg/jwt"
	"therapy-clinic-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleIDKey    contextKey = "role_id"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore service.TokenStore
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore service.TokenStore, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
		log:        log,
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		tokenString, ok := BearerToken(r)
		if !ok {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateTokenType(tokenString, jwt.AccessToken)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check if token exists in Redis (not revoked)
		valid, err := m.tokenStore.IsAccessTokenValid(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to validate token: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !valid {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := WithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithClaims stores the caller identity in ctx.
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
	ctx = context.WithValue(ctx, RoleIDKey, claims.RoleID)
	ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
	return ctx
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// ActorFromContext returns the caller id for audit entries, nil when anonymous.
func ActorFromContext(ctx context.Context) *int64 {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetRoleIDFromContext extracts role ID from context
func GetRoleIDFromContext(ctx context.Context) (int, bool) {
	roleID, ok := ctx.Value(RoleIDKey).(int)
	return roleID, ok
}
