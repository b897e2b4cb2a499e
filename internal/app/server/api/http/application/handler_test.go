package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"jobtracker/internal/app/server/api/http/middleware/auth"
	"jobtracker/internal/domain/application"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, ownerID int, params application.CreateParams) (*application.Application, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, ownerID int, id uuid.UUID) (*application.Application, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, ownerID int, id uuid.UUID, params application.UpdateParams) (*application.Application, error) {
	args := m.Called(ctx, ownerID, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, ownerID int, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockService) List(ctx context.Context, ownerID int, order application.SortOrder) ([]application.Application, error) {
	args := m.Called(ctx, ownerID, order)
	return args.Get(0).([]application.Application), args.Error(1)
}

func (m *MockService) Dashboard(ctx context.Context, ownerID int, filter, sort string) (application.Dashboard, error) {
	args := m.Called(ctx, ownerID, filter, sort)
	return args.Get(0).(application.Dashboard), args.Error(1)
}

const ownerID = 42

var created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func sample(company string, status application.Status, applied string) application.Application {
	d, err := time.Parse(time.DateOnly, applied)
	if err != nil {
		panic(err)
	}
	return application.Application{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		CompanyName: company,
		JobTitle:    "Engineer",
		Status:      status,
		AppliedDate: d,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

// newTestAPI registers the handler behind a middleware that authenticates
// every request as ownerID.
func newTestAPI(t *testing.T, svc application.Servicer) humatest.TestAPI {
	_, api := humatest.New(t)
	asOwner := func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), ownerID)))
	}
	NewHandler(svc, slog.Default(), huma.Middlewares{asOwner}).SetupRoutes(api)
	return api
}

func TestHandler_List(t *testing.T) {
	a := sample("A", application.StatusApplied, "2024-01-10")
	c := sample("C", application.StatusApplied, "2024-01-20")
	b := sample("B", application.StatusInterviewing, "2024-02-01")
	records := []application.Application{b, c, a}

	svc := new(MockService)
	svc.On("Dashboard", mock.Anything, ownerID, "applied", "").Return(application.Dashboard{
		Filter: application.Filter(application.StatusApplied),
		Sort:   application.SortLatest,
		View:   application.DeriveView(records, application.Filter(application.StatusApplied)),
	}, nil)
	api := newTestAPI(t, svc)

	resp := api.Get("/api/applications?filter=applied")
	require.Equal(t, http.StatusOK, resp.Code)

	var body ListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	assert.Equal(t, "applied", body.Filter)
	assert.Equal(t, "latest", body.Sort)
	require.Len(t, body.Applications, 2)
	assert.Equal(t, "C", body.Applications[0].CompanyName)
	assert.Equal(t, "A", body.Applications[1].CompanyName)
	assert.Equal(t, "2024-01-20", body.Applications[0].AppliedDate)
	assert.Equal(t, c.ID.String(), body.Applications[0].ID)
	assert.Equal(t, map[string]int{
		"all": 3, "applied": 2, "interviewing": 1, "offer": 0, "accepted": 0, "rejected": 0,
	}, body.Counts)
	assert.Equal(t, 3, body.Total)
	svc.AssertExpectations(t)
}

func TestHandler_List_UnknownValuesReachService(t *testing.T) {
	svc := new(MockService)
	svc.On("Dashboard", mock.Anything, ownerID, "bogus", "sideways").Return(application.Dashboard{
		Filter: application.FilterAll,
		Sort:   application.SortLatest,
		View:   application.DeriveView(nil, application.FilterAll),
	}, nil)
	api := newTestAPI(t, svc)

	resp := api.Get("/api/applications?filter=bogus&sort=sideways")
	require.Equal(t, http.StatusOK, resp.Code)

	var body ListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "all", body.Filter)
	assert.Equal(t, "latest", body.Sort)
	assert.NotNil(t, body.Applications)
	assert.Empty(t, body.Applications)
	assert.Equal(t, 0, body.Total)
}

func TestHandler_Unauthenticated(t *testing.T) {
	h := NewHandler(new(MockService), slog.Default(), nil)
	ctx := context.Background()

	_, err := h.list(ctx, &listInput{})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = h.create(ctx, &createInput{})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = h.find(ctx, &idInput{ID: uuid.NewString()})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = h.update(ctx, &updateInput{ID: uuid.NewString()})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = h.delete(ctx, &idInput{ID: uuid.NewString()})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestHandler_Create(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), ownerID)

	t.Run("created", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)
		app := sample("Acme", application.StatusApplied, "2024-01-15")

		params := application.CreateParams{CompanyName: "Acme", JobTitle: "Engineer", AppliedDate: "2024-01-15"}
		svc.On("Create", mock.Anything, ownerID, params).Return(&app, nil)

		input := &createInput{Body: CreateRequest{CompanyName: "Acme", JobTitle: "Engineer", AppliedDate: "2024-01-15"}}
		out, err := h.create(authCtx, input)

		require.NoError(t, err)
		assert.Equal(t, app.ID.String(), out.Body.ID)
		assert.Equal(t, application.StatusApplied, out.Body.Status)
		assert.Equal(t, "2024-01-15", out.Body.AppliedDate)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)
		svc.On("Create", mock.Anything, ownerID, mock.Anything).
			Return(nil, fmt.Errorf("%w: company name is required", application.ErrValidation))

		_, err := h.create(authCtx, &createInput{Body: CreateRequest{CompanyName: " "}})

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
		assert.Contains(t, err.Error(), "company name is required")
	})

	t.Run("store error is hidden", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)
		svc.On("Create", mock.Anything, ownerID, mock.Anything).Return(nil, errors.New("pq: deadlock"))

		_, err := h.create(authCtx, &createInput{})

		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
		assert.NotContains(t, err.Error(), "deadlock")
	})
}

func TestHandler_Create_Route(t *testing.T) {
	svc := new(MockService)
	app := sample("Acme", application.StatusOffer, "2024-01-15")
	app.ApplicationURL = "https://acme.example/jobs"
	svc.On("Create", mock.Anything, ownerID, application.CreateParams{
		CompanyName:    "Acme",
		JobTitle:       "Engineer",
		ApplicationURL: "https://acme.example/jobs",
		Status:         application.StatusOffer,
		AppliedDate:    "2024-01-15",
	}).Return(&app, nil)
	api := newTestAPI(t, svc)

	resp := api.Post("/api/applications", map[string]any{
		"company_name":    "Acme",
		"job_title":       "Engineer",
		"application_url": "https://acme.example/jobs",
		"status":          "offer",
		"applied_date":    "2024-01-15",
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body ApplicationResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "https://acme.example/jobs", body.ApplicationURL)
	assert.Equal(t, application.StatusOffer, body.Status)
}

func TestHandler_Create_Route_UnknownStatus(t *testing.T) {
	svc := new(MockService)
	api := newTestAPI(t, svc)

	resp := api.Post("/api/applications", map[string]any{
		"company_name": "Acme",
		"job_title":    "Engineer",
		"status":       "ghosted",
		"applied_date": "2024-01-15",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Find(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), ownerID)

	t.Run("found", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)
		app := sample("Acme", application.StatusApplied, "2024-01-15")
		svc.On("Find", mock.Anything, ownerID, app.ID).Return(&app, nil)

		out, err := h.find(authCtx, &idInput{ID: app.ID.String()})

		require.NoError(t, err)
		assert.Equal(t, "Acme", out.Body.CompanyName)
	})

	t.Run("not owned", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)
		id := uuid.New()
		svc.On("Find", mock.Anything, ownerID, id).Return(nil, application.ErrNotFound)

		_, err := h.find(authCtx, &idInput{ID: id.String()})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		_, err := h.find(authCtx, &idInput{ID: "not-a-uuid"})

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		svc.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandler_Update(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), ownerID)
	interviewing := application.StatusInterviewing

	t.Run("partial update", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)
		app := sample("Acme", application.StatusInterviewing, "2024-01-15")
		svc.On("Update", mock.Anything, ownerID, app.ID, application.UpdateParams{Status: &interviewing}).Return(&app, nil)

		out, err := h.update(authCtx, &updateInput{ID: app.ID.String(), Body: UpdateRequest{Status: &interviewing}})

		require.NoError(t, err)
		assert.Equal(t, application.StatusInterviewing, out.Body.Status)
	})

	t.Run("foreign id", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)
		id := uuid.New()
		svc.On("Update", mock.Anything, ownerID, id, mock.Anything).Return(nil, application.ErrNotFound)

		_, err := h.update(authCtx, &updateInput{ID: id.String(), Body: UpdateRequest{Status: &interviewing}})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)
		id := uuid.New()
		bad := "yesterday"
		svc.On("Update", mock.Anything, ownerID, id, application.UpdateParams{AppliedDate: &bad}).
			Return(nil, fmt.Errorf("%w: invalid applied date", application.ErrValidation))

		_, err := h.update(authCtx, &updateInput{ID: id.String(), Body: UpdateRequest{AppliedDate: &bad}})
		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := new(MockService)
		id := uuid.New()
		svc.On("Delete", mock.Anything, ownerID, id).Return(nil)
		api := newTestAPI(t, svc)

		resp := api.Delete("/api/applications/" + id.String())

		assert.Equal(t, http.StatusNoContent, resp.Code)
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockService)
		id := uuid.New()
		svc.On("Delete", mock.Anything, ownerID, id).Return(application.ErrNotFound)
		api := newTestAPI(t, svc)

		resp := api.Delete("/api/applications/" + id.String())

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
