package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"jobtracker/internal/app/client/config"
)

// newTestApp wires an App to handler through a real HTTP round trip and a
// throwaway SQLite store.
func newTestApp(t *testing.T, handler http.Handler) (*App, *SQLiteStorage) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Env:           "local",
		ServerAddress: strings.TrimPrefix(srv.URL, "http://"),
		Timeout:       5 * time.Second,
	}
	httpCl, err := NewHTTPClient(cfg, slog.Default())
	require.NoError(t, err)

	storage := newTestStorage(t)
	return NewWithStorage(cfg, slog.Default(), httpCl, storage), storage
}

func TestApp_LoginStoresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /user/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane", req.Login)
		_ = json.NewEncoder(w).Encode(LoginResponse{Token: "tok-1", Name: "Jane"})
	})
	mux.HandleFunc("GET /api/applications", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "offer", r.URL.Query().Get("filter"))
		_ = json.NewEncoder(w).Encode(Dashboard{Filter: "offer", Sort: "latest", Total: 0, Counts: map[string]int{"all": 0}})
	})

	app, storage := newTestApp(t, mux)
	ctx := context.Background()

	resp, err := app.Login(ctx, "jane", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Jane", resp.Name)

	token, err := storage.Get(ctx, keyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	login, name, err := app.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jane", login)
	assert.Equal(t, "Jane", name)

	dash, err := app.Dashboard(ctx, "offer", "")
	require.NoError(t, err)
	assert.Equal(t, "offer", dash.Filter)
}

func TestApp_RequiresLogin(t *testing.T) {
	app, _ := newTestApp(t, http.NotFoundHandler())
	ctx := context.Background()

	_, err := app.Dashboard(ctx, "", "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = app.GetApplication(ctx, "id")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = app.CreateApplication(ctx, CreateApplicationRequest{})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, app.DeleteApplication(ctx, "id"), ErrNotLoggedIn)
	assert.ErrorIs(t, app.Logout(ctx), ErrNotLoggedIn)
	_, _, err = app.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestApp_UpdateRejectsEmptyRequest(t *testing.T) {
	app, _ := newTestApp(t, http.NotFoundHandler())
	_, err := app.UpdateApplication(context.Background(), "id", UpdateApplicationRequest{})
	assert.EqualError(t, err, "nothing to update")
}

func TestApp_Logout(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "revoked", status: http.StatusNoContent},
		{name: "already expired on server", status: http.StatusUnauthorized},
		{name: "server failure", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("POST /user/logout", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer stored", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			})
			app, storage := newTestApp(t, mux)
			ctx := context.Background()
			require.NoError(t, storage.Set(ctx, keyToken, "stored"))
			require.NoError(t, storage.Set(ctx, keyLogin, "jane"))

			err := app.Logout(ctx)
			if tt.wantErr {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
			} else {
				assert.NoError(t, err)
			}

			// the local session is forgotten either way
			_, err = storage.Get(ctx, keyToken)
			assert.ErrorIs(t, err, ErrNoValue)
			_, err = storage.Get(ctx, keyLogin)
			assert.ErrorIs(t, err, ErrNoValue)
		})
	}
}
