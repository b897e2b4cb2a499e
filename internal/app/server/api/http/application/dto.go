package application

import (
	"time"

	"jobtracker/internal/domain/application"
)

type ApplicationResponse struct {
	ID             string             `json:"id" format:"uuid"`
	CompanyName    string             `json:"company_name"`
	JobTitle       string             `json:"job_title"`
	ApplicationURL string             `json:"application_url,omitempty"`
	Status         application.Status `json:"status"`
	AppliedDate    string             `json:"applied_date" format:"date" example:"2024-01-15"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func toResponse(app *application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             app.ID.String(),
		CompanyName:    app.CompanyName,
		JobTitle:       app.JobTitle,
		ApplicationURL: app.ApplicationURL,
		Status:         app.Status,
		AppliedDate:    app.AppliedDate.Format(application.DateLayout),
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
}

// Filter and Sort are free strings on purpose: unknown values fall back to
// "all" and "latest" instead of failing validation.
type listInput struct {
	Filter string `query:"filter" doc:"all, applied, interviewing, offer, accepted or rejected"`
	Sort   string `query:"sort" doc:"latest or earliest"`
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Filter       string                `json:"filter" doc:"Filter that was applied"`
	Sort         string                `json:"sort" doc:"Sort order that was applied"`
	Applications []ApplicationResponse `json:"applications"`
	Counts       map[string]int        `json:"counts" doc:"Number of applications per status over the unfiltered list, plus all"`
	Total        int                   `json:"total"`
}

type CreateRequest struct {
	CompanyName    string             `json:"company_name" minLength:"1" maxLength:"255"`
	JobTitle       string             `json:"job_title" minLength:"1" maxLength:"255"`
	ApplicationURL string             `json:"application_url,omitempty" maxLength:"500"`
	Status         application.Status `json:"status,omitempty" doc:"Defaults to applied"`
	AppliedDate    string             `json:"applied_date" example:"2024-01-15" doc:"YYYY-MM-DD"`
}

type createInput struct {
	Body CreateRequest
}

type idInput struct {
	ID string `path:"id" doc:"Application id"`
}

type UpdateRequest struct {
	CompanyName    *string             `json:"company_name,omitempty" maxLength:"255"`
	JobTitle       *string             `json:"job_title,omitempty" maxLength:"255"`
	ApplicationURL *string             `json:"application_url,omitempty" maxLength:"500" doc:"Empty string clears the link"`
	Status         *application.Status `json:"status,omitempty"`
	AppliedDate    *string             `json:"applied_date,omitempty" example:"2024-01-15"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Application id"`
	Body UpdateRequest
}

type output struct {
	Body ApplicationResponse
}
