package domain

import (
	"time"

	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
)

// Project is a unit of work, optionally attached to a client.
type Project struct {
	ID          string
	ClientID    *string
	ClientName  *string // read-only, filled by listings
	Name        string
	Description *string
	StartDate   *time.Time
	Deadline    *time.Time
}

// Validate checks rules that do not need storage.
func (p Project) Validate() error {
	if p.Name == "" {
		return domerrors.Validation("name is required")
	}
	if p.StartDate != nil && p.Deadline != nil && p.Deadline.Before(*p.StartDate) {
		return domerrors.Validation("deadline must not be before startDate")
	}
	return nil
}
