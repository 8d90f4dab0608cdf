package domain

import (
	"math"
	"time"

	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
)

// TimeLog records time a user spent on a task.
type TimeLog struct {
	ID        string
	TaskID    string
	TaskName  string // read-only, filled by listings
	UserID    string
	FullName  string // read-only, filled by listings
	StartTime time.Time
	EndTime   time.Time
}

// TotalHours is the logged duration in hours, rounded to two decimals.
func (t TimeLog) TotalHours() float64 {
	h := t.EndTime.Sub(t.StartTime).Hours()
	return math.Round(h*100) / 100
}

// Validate checks rules that do not need storage.
func (t TimeLog) Validate() error {
	switch {
	case t.TaskID == "":
		return domerrors.Validation("taskId is required")
	case t.UserID == "":
		return domerrors.Validation("userId is required")
	case t.StartTime.IsZero() || t.EndTime.IsZero():
		return domerrors.Validation("startTime and endTime are required")
	case t.EndTime.Before(t.StartTime):
		return domerrors.Validation("endTime must not be before startTime")
	}
	return nil
}
