package queue

import (
	"context"
	"errors"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

const TypePurgeExpiredSessions = "sessions:purge_expired"

// purgeUniqueTTL keeps a manual enqueue from stacking on top of a scheduled one.
const purgeUniqueTTL = time.Minute

// NewPurgeExpiredSessionsTask builds the purge task. It carries no payload;
// the worker uses its own clock.
func NewPurgeExpiredSessionsTask() *asynq.Task {
	return asynq.NewTask(TypePurgeExpiredSessions, nil, asynq.MaxRetry(1), asynq.Timeout(time.Minute))
}

type TaskEnqueuer struct {
	client *asynq.Client
	log    zerolog.Logger
}

func NewAsynqEnqueuer(redisOpt asynq.RedisClientOpt, log zerolog.Logger) *TaskEnqueuer {
	return &TaskEnqueuer{client: asynq.NewClient(redisOpt), log: log}
}

func (q *TaskEnqueuer) Close() error {
	return q.client.Close()
}

func (q *TaskEnqueuer) EnqueuePurgeExpiredSessions(ctx context.Context) error {
	info, err := q.client.EnqueueContext(ctx, NewPurgeExpiredSessionsTask(), asynq.Unique(purgeUniqueTTL))
	if errors.Is(err, asynq.ErrDuplicateTask) {
		q.log.Debug().Msg("session purge already queued")
		return nil
	}
	if err != nil {
		q.log.Warn().Err(err).Msg("enqueue session purge failed")
		return err
	}
	q.log.Debug().Str("task_id", info.ID).Msg("session purge enqueued")
	return nil
}

var _ ports.TaskEnqueuer = (*TaskEnqueuer)(nil)
