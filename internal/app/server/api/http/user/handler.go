package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"jobtracker/internal/app/server/api/http/middleware/auth"
	"jobtracker/internal/domain/session"
	"jobtracker/internal/domain/user"
)

// CookieOptions controls the session cookie issued on login.
type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

type Handler struct {
	service        user.Servicer
	session        session.Servicer
	cookie         CookieOptions
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

// NewHandler wires the public operations with middleware and logout with
// authMiddleware, which must include the auth gate.
func NewHandler(service user.Servicer, session session.Servicer, cookie CookieOptions, log *slog.Logger, middleware, authMiddleware huma.Middlewares) *Handler {
	return &Handler{
		service:        service,
		session:        session,
		cookie:         cookie,
		log:            log.With("component", "user_handler"),
		middleware:     middleware,
		authMiddleware: authMiddleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Login, input.Body.Name, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrAlreadyExists):
			return nil, huma.Error409Conflict("login is already taken")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("register failed", "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}

	return &registerOutput{
		Body: RegisterResponse{ID: userID, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Login, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidAuth) {
			return nil, huma.Error401Unauthorized("invalid credentials")
		}
		h.log.Error("authenticate failed", "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("create session failed", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}

	return &loginOutput{
		SetCookie: h.sessionCookie(token, int(h.cookie.TTL.Seconds())),
		Body: LoginResponse{
			Token:  token,
			Name:   u.Name,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*logoutOutput, error) {
	token, ok := auth.GetToken(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	if err := h.session.Revoke(ctx, token); err != nil {
		if errors.Is(err, session.ErrUnauthenticated) {
			return nil, huma.Error401Unauthorized("unauthorized")
		}
		h.log.Error("revoke session failed", "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}

	return &logoutOutput{SetCookie: h.sessionCookie("", -1)}, nil
}

// sessionCookie builds the session cookie; a negative maxAge deletes it.
func (h *Handler) sessionCookie(value string, maxAge int) http.Cookie {
	return http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
