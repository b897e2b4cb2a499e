package client

import (
	"fmt"
	"strings"
	"time"
)

type RegisterRequest struct {
	Login    string `json:"login"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
}

type Application struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"company_name"`
	JobTitle       string    `json:"job_title"`
	ApplicationURL string    `json:"application_url,omitempty"`
	Status         string    `json:"status"`
	AppliedDate    string    `json:"applied_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Dashboard struct {
	Filter       string         `json:"filter"`
	Sort         string         `json:"sort"`
	Applications []Application  `json:"applications"`
	Counts       map[string]int `json:"counts"`
	Total        int            `json:"total"`
}

type CreateApplicationRequest struct {
	CompanyName    string `json:"company_name"`
	JobTitle       string `json:"job_title"`
	ApplicationURL string `json:"application_url,omitempty"`
	Status         string `json:"status,omitempty"`
	AppliedDate    string `json:"applied_date"`
}

// UpdateApplicationRequest sends only the non-nil fields.
type UpdateApplicationRequest struct {
	CompanyName    *string `json:"company_name,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
	ApplicationURL *string `json:"application_url,omitempty"`
	Status         *string `json:"status,omitempty"`
	AppliedDate    *string `json:"applied_date,omitempty"`
}

func (r UpdateApplicationRequest) Empty() bool {
	return r.CompanyName == nil && r.JobTitle == nil && r.ApplicationURL == nil &&
		r.Status == nil && r.AppliedDate == nil
}

// APIError is an RFC 9457 problem document returned by the server.
type APIError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Message  string `json:"message"`
		Location string `json:"location"`
	} `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Title
	}
	if len(e.Errors) > 0 {
		details := make([]string, 0, len(e.Errors))
		for _, d := range e.Errors {
			if d.Location != "" {
				details = append(details, d.Location+": "+d.Message)
			} else {
				details = append(details, d.Message)
			}
		}
		msg += " (" + strings.Join(details, "; ") + ")"
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, msg)
}
