package ports

import "context"

// TaskEnqueuer enqueues background maintenance tasks.
type TaskEnqueuer interface {
	EnqueuePurgeExpiredSessions(ctx context.Context) error
}
