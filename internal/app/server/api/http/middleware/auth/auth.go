package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"jobtracker/internal/domain/session"
)

// CookieName is the session cookie set on login.
const CookieName = "jobtracker_session"

type Auth struct {
	api     huma.API
	session session.Servicer
	log     *slog.Logger
}

func New(api huma.API, session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		api:     api,
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const (
	userIDKey contextKey = "userID"
	tokenKey  contextKey = "token"
)

// Middleware resolves the caller from a bearer token or the session cookie.
// Requests without a valid session get 401 and never reach the handler.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := TokenFromRequest(ctx)

		userID, err := a.session.Validate(ctx.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrUnauthenticated) {
				a.log.Debug("unauthenticated request", "path", ctx.URL().Path)
				a.writeErr(ctx, http.StatusUnauthorized, "unauthorized")
				return
			}
			a.log.Error("session validation failed", "error", err)
			a.writeErr(ctx, http.StatusInternalServerError, "internal server error")
			return
		}

		newCtx := WithToken(WithUserID(ctx.Context(), userID), token)

		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) writeErr(ctx huma.Context, status int, msg string) {
	if err := huma.WriteErr(a.api, ctx, status, msg); err != nil {
		a.log.Error("write error response", "error", err)
	}
}

// TokenFromRequest prefers the Authorization header over the cookie.
func TokenFromRequest(ctx huma.Context) string {
	if h := ctx.Header("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if c, err := huma.ReadCookie(ctx, CookieName); err == nil {
		return c.Value
	}
	return ""
}

// WithUserID stores an owner id the way Middleware does.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func GetUserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}

func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
