package application

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// Status is the lifecycle label of a job application. Any status may be
// changed to any other through an update; there is no transition graph.
type Status string

const (
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusOffer        Status = "offer"
	StatusAccepted     Status = "accepted"
	StatusRejected     Status = "rejected"
)

// Statuses lists every status in display order.
var Statuses = []Status{
	StatusApplied,
	StatusInterviewing,
	StatusOffer,
	StatusAccepted,
	StatusRejected,
}

func (Status) Schema(_ huma.Registry) *huma.Schema {
	enum := make([]any, 0, len(Statuses))
	for _, s := range Statuses {
		enum = append(enum, string(s))
	}
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        enum,
		Description: "Application status",
		Examples:    []any{string(StatusApplied)},
	}
}

// Validate reports whether s belongs to the closed status set.
func (s Status) Validate() error {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOffer, StatusAccepted, StatusRejected:
		return nil
	}
	return fmt.Errorf("%w: unknown status %q", ErrValidation, string(s))
}

func (s Status) String() string {
	return string(s)
}

// DisplayName returns the capitalized label shown in lists.
func (s Status) DisplayName() string {
	switch s {
	case StatusApplied:
		return "Applied"
	case StatusInterviewing:
		return "Interviewing"
	case StatusOffer:
		return "Offer"
	case StatusAccepted:
		return "Accepted"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}
