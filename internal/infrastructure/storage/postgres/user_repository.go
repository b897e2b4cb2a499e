package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"jobtracker/internal/domain/user"
)

type UserRepository struct {
	db  DB
	log *slog.Logger
}

func NewUserRepository(db DB, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, login, name, passwordHash string) (int, error) {
	var userID int
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (login, name, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		login, name, passwordHash).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, user.ErrAlreadyExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return userID, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx,
		`SELECT id, login, name, password_hash, created_at FROM users WHERE login = $1`, login).
		Scan(&u.ID, &u.Login, &u.Name, &u.Password, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		r.log.Error("failed to find user", "login", login, "error", err)
		return user.User{}, fmt.Errorf("select user: %w", err)
	}

	return u, nil
}
