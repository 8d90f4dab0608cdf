package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const healthTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type healthCheck struct {
	name string
	ping func(ctx context.Context) error
}

// HealthHandler serves /health. PostgreSQL is always checked; Redis only when
// the purge scheduler is running.
type HealthHandler struct {
	checks []healthCheck
}

// NewHealthHandler creates a health handler. Pass a nil redisPinger when Redis is not configured.
func NewHealthHandler(db dbPinger, rdb redisPinger) *HealthHandler {
	h := &HealthHandler{checks: []healthCheck{{name: "database", ping: db.Ping}}}
	if rdb != nil {
		h.checks = append(h.checks, healthCheck{name: "redis", ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}
	return h
}

type healthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Message string            `json:"message,omitempty"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	for _, c := range h.checks {
		if err := c.ping(ctx); err != nil {
			resp.Checks[c.name] = "down: " + err.Error()
			resp.Status = "unhealthy"
			continue
		}
		resp.Checks[c.name] = "ok"
	}
	if resp.Status != "ok" {
		resp.Message = "one or more checks failed"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
