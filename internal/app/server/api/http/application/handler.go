package application

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"jobtracker/internal/app/server/api/http/middleware/auth"
	"jobtracker/internal/domain/application"
)

type Handler struct {
	service    application.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service application.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "application_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	dash, err := h.service.Dashboard(ctx, userID, input.Filter, input.Sort)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	apps := make([]ApplicationResponse, 0, len(dash.Visible))
	for i := range dash.Visible {
		apps = append(apps, toResponse(&dash.Visible[i]))
	}

	counts := make(map[string]int, len(dash.Counts))
	for f, n := range dash.Counts {
		counts[string(f)] = n
	}

	return &listOutput{
		Body: ListResponse{
			Filter:       string(dash.Filter),
			Sort:         string(dash.Sort),
			Applications: apps,
			Counts:       counts,
			Total:        dash.Counts[application.FilterAll],
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	app, err := h.service.Create(ctx, userID, application.CreateParams{
		CompanyName:    input.Body.CompanyName,
		JobTitle:       input.Body.JobTitle,
		ApplicationURL: input.Body.ApplicationURL,
		Status:         input.Body.Status,
		AppliedDate:    input.Body.AppliedDate,
	})
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &output{Body: toResponse(app)}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	app, err := h.service.Find(ctx, userID, id)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &output{Body: toResponse(app)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	app, err := h.service.Update(ctx, userID, id, application.UpdateParams{
		CompanyName:    input.Body.CompanyName,
		JobTitle:       input.Body.JobTitle,
		ApplicationURL: input.Body.ApplicationURL,
		Status:         input.Body.Status,
		AppliedDate:    input.Body.AppliedDate,
	})
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &output{Body: toResponse(app)}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		return nil, h.toHTTPError(err)
	}

	return nil, nil
}

// parseID treats a malformed id like an id that does not exist.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, huma.Error404NotFound("application not found")
	}
	return id, nil
}

func (h *Handler) toHTTPError(err error) error {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return huma.Error404NotFound("application not found")
	case errors.Is(err, application.ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	}
	h.log.Error("application request failed", "error", err)
	return huma.Error500InternalServerError("internal server error")
}
