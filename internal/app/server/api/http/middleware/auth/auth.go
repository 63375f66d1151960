package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"tutorlink/internal/domain/user"
)

// Auth validates the bearer token and stashes the caller's identity in the
// request context for handlers downstream.
type Auth struct {
	secret []byte
	log    *slog.Logger
}

func New(secret []byte, log *slog.Logger) *Auth {
	return &Auth{
		secret: secret,
		log:    log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

// Middleware rejects requests without a valid bearer token with 401.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := ctx.Header("Authorization")

		if len(token) < 7 || token[:7] != "Bearer " {
			a.log.Debug("missing bearer credential")
			a.reject(ctx)
			return
		}

		userID, role, err := user.ValidateToken(a.secret, token[7:])
		if err != nil {
			a.log.Debug("token rejected", "err", err)
			a.reject(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), userIDKey, userID)
		newCtx = context.WithValue(newCtx, roleKey, role)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) reject(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	}); err != nil {
		a.log.Error("encode unauthorized body", "err", err)
	}
}

// WithUserID injects the caller identity directly, bypassing the token
// check. Handler tests use it.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

func WithRole(ctx context.Context, role user.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func GetRole(ctx context.Context) (user.Role, bool) {
	role, ok := ctx.Value(roleKey).(user.Role)
	return role, ok
}
