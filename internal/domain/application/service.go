package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, ownerID int, params CreateParams) (*Application, error)
	Find(ctx context.Context, ownerID int, id uuid.UUID) (*Application, error)
	Update(ctx context.Context, ownerID int, id uuid.UUID, params UpdateParams) (*Application, error)
	Delete(ctx context.Context, ownerID int, id uuid.UUID) error
	List(ctx context.Context, ownerID int, order SortOrder) ([]Application, error)
	Dashboard(ctx context.Context, ownerID int, filter, sort string) (Dashboard, error)
}

// Dashboard is a View together with the filter and sort order that were
// actually applied after defaulting unrecognized input.
type Dashboard struct {
	Filter Filter
	Sort   SortOrder
	View
}

type Service struct {
	repo  Repository
	log   *slog.Logger
	now   func() time.Time
	newID func() uuid.UUID
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		log:   log.With("component", "application_service"),
		now:   time.Now,
		newID: uuid.New,
	}
}

// Create validates params and stores a new application owned by ownerID.
// Nothing is stored when validation fails.
func (s *Service) Create(ctx context.Context, ownerID int, params CreateParams) (*Application, error) {
	company, err := validateText("company name", params.CompanyName, MaxTextLen)
	if err != nil {
		return nil, err
	}
	title, err := validateText("job title", params.JobTitle, MaxTextLen)
	if err != nil {
		return nil, err
	}
	url, err := validateURL(params.ApplicationURL)
	if err != nil {
		return nil, err
	}
	applied, err := ParseDate(params.AppliedDate)
	if err != nil {
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = StatusApplied
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	app := &Application{
		ID:             s.newID(),
		OwnerID:        ownerID,
		CompanyName:    company,
		JobTitle:       title,
		ApplicationURL: url,
		Status:         status,
		AppliedDate:    applied,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		s.log.Error("failed to create application", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.log.Info("application created", "id", app.ID, "owner_id", ownerID, "status", app.Status)
	return app, nil
}

// Find returns a single application of the owner.
func (s *Service) Find(ctx context.Context, ownerID int, id uuid.UUID) (*Application, error) {
	app, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find application", "id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("find application: %w", err)
	}
	return app, nil
}

// Update applies the non-nil fields of params to the owner's application and
// refreshes UpdatedAt. Validation runs before anything is written.
func (s *Service) Update(ctx context.Context, ownerID int, id uuid.UUID, params UpdateParams) (*Application, error) {
	current, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get application for update: %w", err)
	}

	updated := *current
	if params.CompanyName != nil {
		if updated.CompanyName, err = validateText("company name", *params.CompanyName, MaxTextLen); err != nil {
			return nil, err
		}
	}
	if params.JobTitle != nil {
		if updated.JobTitle, err = validateText("job title", *params.JobTitle, MaxTextLen); err != nil {
			return nil, err
		}
	}
	if params.ApplicationURL != nil {
		if updated.ApplicationURL, err = validateURL(*params.ApplicationURL); err != nil {
			return nil, err
		}
	}
	if params.Status != nil {
		if err := params.Status.Validate(); err != nil {
			return nil, err
		}
		updated.Status = *params.Status
	}
	if params.AppliedDate != nil {
		if updated.AppliedDate, err = ParseDate(*params.AppliedDate); err != nil {
			return nil, err
		}
	}

	updated.UpdatedAt = s.now().UTC()
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		updated.UpdatedAt = updated.CreatedAt
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update application", "id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("update application: %w", err)
	}

	s.log.Info("application updated", "id", id, "owner_id", ownerID, "status", updated.Status)
	return &updated, nil
}

// Delete permanently removes the owner's application.
func (s *Service) Delete(ctx context.Context, ownerID int, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete application", "id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete application: %w", err)
	}

	s.log.Info("application deleted", "id", id, "owner_id", ownerID)
	return nil
}

// List returns every application of the owner in the given order.
func (s *Service) List(ctx context.Context, ownerID int, order SortOrder) ([]Application, error) {
	apps, err := s.repo.ListByOwner(ctx, ownerID, ParseSort(string(order)))
	if err != nil {
		s.log.Error("failed to list applications", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// Dashboard fetches the owner's applications sorted by applied date and
// derives the filtered view. Unrecognized filter and sort values fall back
// to FilterAll and SortLatest.
func (s *Service) Dashboard(ctx context.Context, ownerID int, filter, sort string) (Dashboard, error) {
	f := ParseFilter(filter)
	order := ParseSort(sort)

	apps, err := s.List(ctx, ownerID, order)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Filter: f,
		Sort:   order,
		View:   DeriveView(apps, f),
	}, nil
}
