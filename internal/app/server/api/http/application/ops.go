package application

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var security = []map[string][]string{{"bearer": {}}, {"cookie": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "applications-list",
		Method:      http.MethodGet,
		Path:        "/api/applications",
		Summary:     "Dashboard view of the caller's applications",
		Description: "Returns the applications matching filter in applied-date order together with per-status counts.",
		Tags:        []string{"applications"},
		Security:    security,
		Errors:      []int{http.StatusUnauthorized},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "applications-create",
		Method:        http.MethodPost,
		Path:          "/api/applications",
		Summary:       "Create an application",
		Tags:          []string{"applications"},
		DefaultStatus: http.StatusCreated,
		Security:      security,
		Errors:        []int{http.StatusUnauthorized, http.StatusUnprocessableEntity},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "applications-find",
		Method:      http.MethodGet,
		Path:        "/api/applications/{id}",
		Summary:     "Get an application",
		Tags:        []string{"applications"},
		Security:    security,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "applications-update",
		Method:      http.MethodPut,
		Path:        "/api/applications/{id}",
		Summary:     "Update an application",
		Description: "Only the fields present in the body are changed.",
		Tags:        []string{"applications"},
		Security:    security,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusUnprocessableEntity},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "applications-delete",
		Method:        http.MethodDelete,
		Path:          "/api/applications/{id}",
		Summary:       "Delete an application",
		Tags:          []string{"applications"},
		DefaultStatus: http.StatusNoContent,
		Security:      security,
		Errors:        []int{http.StatusUnauthorized, http.StatusNotFound},
		Middlewares:   h.middleware,
	}
}
