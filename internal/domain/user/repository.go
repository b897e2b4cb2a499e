package user

import (
	"context"
)

type Repository interface {
	// Create stores a new user and returns its id, or ErrAlreadyExists when
	// the login is taken.
	Create(ctx context.Context, login, name, passwordHash string) (int, error)
	FindByLogin(ctx context.Context, login string) (User, error)
}
