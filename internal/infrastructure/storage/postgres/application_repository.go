package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"jobtracker/internal/domain/application"
)

const applicationColumns = `id, user_id, company_name, job_title, COALESCE(application_url, ''),
		       status, applied_date, created_at, updated_at`

// orderClauses maps every accepted sort order to a fixed ORDER BY so that no
// caller input reaches the query text.
var orderClauses = map[application.SortOrder]string{
	application.SortLatest:   `applied_date DESC, created_at DESC, id DESC`,
	application.SortEarliest: `applied_date ASC, created_at ASC, id ASC`,
}

type ApplicationRepository struct {
	db  DB
	log *slog.Logger
}

func NewApplicationRepository(db DB, log *slog.Logger) *ApplicationRepository {
	return &ApplicationRepository{
		db:  db,
		log: log.With("component", "application_repository"),
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	const query = `
		INSERT INTO job_applications
		    (id, user_id, company_name, job_title, application_url, status, applied_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		app.ID, app.OwnerID, app.CompanyName, app.JobTitle, app.ApplicationURL,
		string(app.Status), app.AppliedDate, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) Get(ctx context.Context, ownerID int, id uuid.UUID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE id = $1 AND user_id = $2`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrNotFound
		}
		return nil, fmt.Errorf("select application: %w", err)
	}
	return &app, nil
}

// Update overwrites the mutable columns of a row owned by app.OwnerID. Rows of
// other owners are never matched.
func (r *ApplicationRepository) Update(ctx context.Context, app *application.Application) error {
	const query = `
		UPDATE job_applications
		SET company_name = $3,
		    job_title = $4,
		    application_url = NULLIF($5, ''),
		    status = $6,
		    applied_date = $7,
		    updated_at = $8
		WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query,
		app.ID, app.OwnerID, app.CompanyName, app.JobTitle, app.ApplicationURL,
		string(app.Status), app.AppliedDate, app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, ownerID int, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM job_applications WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) ListByOwner(ctx context.Context, ownerID int, order application.SortOrder) ([]application.Application, error) {
	orderBy, ok := orderClauses[order]
	if !ok {
		orderBy = orderClauses[application.SortLatest]
	}

	query := `SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE user_id = $1
		ORDER BY ` + orderBy

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list applications", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps := make([]application.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}

	return apps, nil
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var (
		app    application.Application
		status string
	)
	err := row.Scan(
		&app.ID, &app.OwnerID, &app.CompanyName, &app.JobTitle, &app.ApplicationURL,
		&status, &app.AppliedDate, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return application.Application{}, err
	}
	app.Status = application.Status(status)
	app.AppliedDate = app.AppliedDate.UTC()
	app.CreatedAt = app.CreatedAt.UTC()
	app.UpdatedAt = app.UpdatedAt.UTC()
	return app, nil
}
