package types

import (
	"context"
	"errors"

	"jobtracker/internal/app/client"
)

type ctxKey string

// ClientAppKey stores the *client.App in a command context.
const ClientAppKey ctxKey = "app"

var ErrNoApp = errors.New("client is not initialized")

func AppFromContext(ctx context.Context) (*client.App, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
