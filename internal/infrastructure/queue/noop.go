package queue

import (
	"context"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
)

// NoopEnqueuer is used when Redis is not configured; expired sessions then
// stay in the table until purged through the admin endpoint.
type NoopEnqueuer struct{}

func NewNoopEnqueuer() *NoopEnqueuer {
	return &NoopEnqueuer{}
}

func (q *NoopEnqueuer) EnqueuePurgeExpiredSessions(ctx context.Context) error {
	return nil
}

var _ ports.TaskEnqueuer = (*NoopEnqueuer)(nil)
