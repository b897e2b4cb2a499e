package application

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistent store of applications. Every method is
// scoped to the owner; a row owned by someone else behaves as missing.
type Repository interface {
	Create(ctx context.Context, app *Application) error
	Get(ctx context.Context, ownerID int, id uuid.UUID) (*Application, error)
	// Update overwrites the mutable fields of the row matching app.ID and
	// app.OwnerID. It returns ErrNotFound when no such row exists.
	Update(ctx context.Context, app *Application) error
	Delete(ctx context.Context, ownerID int, id uuid.UUID) error
	// ListByOwner returns all rows of the owner ordered by applied date,
	// newest first for SortLatest and oldest first for SortEarliest.
	ListByOwner(ctx context.Context, ownerID int, order SortOrder) ([]Application, error)
}
