package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"

	"jobtracker/internal/app/client/config"
)

// ErrNotLoggedIn is returned by commands that need a stored session.
var ErrNotLoggedIn = errors.New("not logged in, run `jobtracker auth login` first")

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	storage    Storage
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init http client: %w", err)
	}

	storage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}

	return NewWithStorage(cfg, log, httpCl, storage), nil
}

func NewWithStorage(cfg *config.Config, log *slog.Logger, httpCl *httpClient, storage Storage) *App {
	return &App{
		config:     cfg,
		log:        log.With("component", "client_app"),
		httpClient: httpCl,
		storage:    storage,
	}
}

func (a *App) Close() error {
	return a.storage.Close()
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) Register(ctx context.Context, login, name, password string) error {
	return a.httpClient.Register(ctx, RegisterRequest{Login: login, Name: name, Password: password})
}

// Login opens a session and stores its token for later commands.
func (a *App) Login(ctx context.Context, login, password string) (LoginResponse, error) {
	resp, err := a.httpClient.Login(ctx, LoginRequest{Login: login, Password: password})
	if err != nil {
		return resp, err
	}

	if err := a.storage.Set(ctx, keyToken, resp.Token); err != nil {
		return resp, fmt.Errorf("save token: %w", err)
	}
	if err := a.storage.Set(ctx, keyLogin, login); err != nil {
		return resp, fmt.Errorf("save login: %w", err)
	}
	if err := a.storage.Set(ctx, keyName, resp.Name); err != nil {
		return resp, fmt.Errorf("save name: %w", err)
	}
	return resp, nil
}

// Logout closes the server session and forgets the local token. The local
// token is dropped even if the server already considers it invalid.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authorize(ctx); err != nil {
		return err
	}

	serverErr := a.httpClient.Logout(ctx)
	var apiErr *APIError
	if errors.As(serverErr, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		serverErr = nil
	}

	if err := a.storage.Delete(ctx, keyToken, keyLogin, keyName); err != nil {
		return errors.Join(serverErr, fmt.Errorf("clear local session: %w", err))
	}
	a.httpClient.SetToken("")
	return serverErr
}

// CurrentUser returns the login and display name of the stored session.
func (a *App) CurrentUser(ctx context.Context) (login, name string, err error) {
	login, err = a.storage.Get(ctx, keyLogin)
	if errors.Is(err, ErrNoValue) {
		return "", "", ErrNotLoggedIn
	}
	if err != nil {
		return "", "", err
	}
	name, err = a.storage.Get(ctx, keyName)
	if err != nil && !errors.Is(err, ErrNoValue) {
		return "", "", err
	}
	return login, name, nil
}

func (a *App) Dashboard(ctx context.Context, filter, sort string) (Dashboard, error) {
	if err := a.authorize(ctx); err != nil {
		return Dashboard{}, err
	}
	return a.httpClient.Dashboard(ctx, filter, sort)
}

func (a *App) GetApplication(ctx context.Context, id string) (Application, error) {
	if err := a.authorize(ctx); err != nil {
		return Application{}, err
	}
	return a.httpClient.GetApplication(ctx, id)
}

func (a *App) CreateApplication(ctx context.Context, req CreateApplicationRequest) (Application, error) {
	if err := a.authorize(ctx); err != nil {
		return Application{}, err
	}
	return a.httpClient.CreateApplication(ctx, req)
}

func (a *App) UpdateApplication(ctx context.Context, id string, req UpdateApplicationRequest) (Application, error) {
	if req.Empty() {
		return Application{}, errors.New("nothing to update")
	}
	if err := a.authorize(ctx); err != nil {
		return Application{}, err
	}
	return a.httpClient.UpdateApplication(ctx, id, req)
}

func (a *App) DeleteApplication(ctx context.Context, id string) error {
	if err := a.authorize(ctx); err != nil {
		return err
	}
	return a.httpClient.DeleteApplication(ctx, id)
}

// authorize loads the stored token into the HTTP client.
func (a *App) authorize(ctx context.Context) error {
	token, err := a.storage.Get(ctx, keyToken)
	if errors.Is(err, ErrNoValue) || token == "" {
		return ErrNotLoggedIn
	}
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	a.httpClient.SetToken(token)
	return nil
}
