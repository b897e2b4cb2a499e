// Package api assembles the HTTP surface:
//
//	GET    /api/v1/health              liveness and database check (public)
//	POST   /user/register              create an account (public)
//	POST   /user/login                 open a session (public)
//	POST   /user/logout                close the session (auth)
//	GET    /api/applications           dashboard: filtered list and counts (auth)
//	POST   /api/applications           create (auth)
//	GET    /api/applications/{id}      read one (auth)
//	PUT    /api/applications/{id}      partial update (auth)
//	DELETE /api/applications/{id}      delete (auth)
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	applicationAPI "jobtracker/internal/app/server/api/http/application"
	healthAPI "jobtracker/internal/app/server/api/http/health"
	"jobtracker/internal/app/server/api/http/middleware"
	"jobtracker/internal/app/server/api/http/middleware/auth"
	"jobtracker/internal/app/server/api/http/middleware/logger"
	userAPI "jobtracker/internal/app/server/api/http/user"
	"jobtracker/internal/app/server/config"
	"jobtracker/internal/domain/application"
	"jobtracker/internal/domain/session"
	"jobtracker/internal/domain/user"
	"jobtracker/internal/infrastructure/storage/postgres"
)

// Services are the domain services behind the HTTP handlers.
type Services struct {
	User        user.Servicer
	Session     session.Servicer
	Application application.Servicer
}

// NewServices builds the domain services on top of PostgreSQL.
func NewServices(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) Services {
	pool := storage.Pool()
	return Services{
		User:        user.NewService(postgres.NewUserRepository(pool, log), user.NewPasswordValidator(), log),
		Session:     session.NewService(postgres.NewSessionRepository(pool, log), cfg.Session.TTL, log),
		Application: application.NewService(postgres.NewApplicationRepository(pool, log), log),
	}
}

// New creates the router with every operation registered through huma.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	return NewWithServices(storage, NewServices(storage, cfg, log), cfg, log)
}

func NewWithServices(db healthAPI.Pinger, svc Services, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)

	humaConfig := huma.DefaultConfig("Job Tracker API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
		"cookie": {Type: "apiKey", In: "cookie", Name: auth.CookieName},
	}

	API := humachi.New(mux, humaConfig)

	authMW := auth.New(API, svc.Session, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthAPI.NewHandler(db, log, middlewares.GetAllAndClear()).SetupRoutes(API)

	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	userAPI.NewHandler(svc.User, svc.Session, userAPI.CookieOptions{
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.CookieSecure,
	}, log, public, middlewares.GetAllAndClear()).SetupRoutes(API)

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	applicationAPI.NewHandler(svc.Application, log, middlewares.GetAllAndClear()).SetupRoutes(API)

	return mux
}
