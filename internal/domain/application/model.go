package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout = time.DateOnly

	MaxTextLen = 255
	MaxURLLen  = 500
)

type Application struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        int       `json:"owner_id"`
	CompanyName    string    `json:"company_name"`
	JobTitle       string    `json:"job_title"`
	ApplicationURL string    `json:"application_url,omitempty"`
	Status         Status    `json:"status"`
	AppliedDate    time.Time `json:"applied_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateParams carries user input for a new application. Status may be
// empty, in which case StatusApplied is used.
type CreateParams struct {
	CompanyName    string
	JobTitle       string
	ApplicationURL string
	Status         Status
	AppliedDate    string
}

// UpdateParams carries a partial update; nil fields keep their current value.
type UpdateParams struct {
	CompanyName    *string
	JobTitle       *string
	ApplicationURL *string
	Status         *Status
	AppliedDate    *string
}

// ParseDate accepts a calendar date (2006-01-02) or a full RFC 3339
// timestamp and returns midnight UTC of that calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: applied date is required", ErrValidation)
	}

	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}

	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: applied date %q is not a date", ErrValidation, s)
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

func validateText(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if len([]rune(value)) > maxLen {
		return "", fmt.Errorf("%w: %s must be at most %d characters", ErrValidation, field, maxLen)
	}
	return value, nil
}

func validateURL(value string) (string, error) {
	value = strings.TrimSpace(value)
	if len([]rune(value)) > MaxURLLen {
		return "", fmt.Errorf("%w: application url must be at most %d characters", ErrValidation, MaxURLLen)
	}
	return value, nil
}
