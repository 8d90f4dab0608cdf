package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/application/retention"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// PurgeHandler deletes expired sessions when a purge task runs.
type PurgeHandler struct {
	sessions ports.SessionStore
	now      func() time.Time
	log      zerolog.Logger
}

func NewPurgeHandler(sessions ports.SessionStore, now func() time.Time, log zerolog.Logger) *PurgeHandler {
	if now == nil {
		now = time.Now
	}
	return &PurgeHandler{sessions: sessions, now: now, log: log}
}

func (h *PurgeHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	n, err := retention.PurgeExpiredSessions(ctx, h.sessions, h.now())
	if err != nil {
		h.log.Error().Err(err).Str("task", t.Type()).Msg("purge expired sessions failed")
		return fmt.Errorf("purge expired sessions: %w", err)
	}
	h.log.Info().Int64("purged", n).Msg("expired sessions purged")
	return nil
}

// Worker runs the asynq server and the scheduler that enqueues the purge task.
type Worker struct {
	srv       *asynq.Server
	mux       *asynq.ServeMux
	scheduler *asynq.Scheduler
	interval  time.Duration
	log       zerolog.Logger
}

// NewWorker registers the purge handler and, for a positive interval, a
// periodic purge entry. Call Run to start both.
func NewWorker(redisOpt asynq.RedisClientOpt, purge *PurgeHandler, interval time.Duration, log zerolog.Logger) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 1,
		LogLevel:    asynq.WarnLevel,
	})
	mux := asynq.NewServeMux()
	mux.Handle(TypePurgeExpiredSessions, purge)
	w := &Worker{srv: srv, mux: mux, interval: interval, log: log}
	if interval > 0 {
		w.scheduler = asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{Location: time.UTC, LogLevel: asynq.WarnLevel})
	}
	return w
}

// Run starts the scheduler and blocks serving tasks until Shutdown.
func (w *Worker) Run() error {
	if w.scheduler != nil {
		spec := fmt.Sprintf("@every %s", w.interval)
		entryID, err := w.scheduler.Register(spec, NewPurgeExpiredSessionsTask(), asynq.Unique(w.interval))
		if err != nil {
			return fmt.Errorf("register purge schedule: %w", err)
		}
		if err := w.scheduler.Start(); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		w.log.Info().Str("entry_id", entryID).Str("every", w.interval.String()).Msg("session purge scheduled")
	}
	return w.srv.Run(w.mux)
}

// Shutdown stops the scheduler and the worker.
func (w *Worker) Shutdown() {
	if w.scheduler != nil {
		w.scheduler.Shutdown()
	}
	w.srv.Shutdown()
}
