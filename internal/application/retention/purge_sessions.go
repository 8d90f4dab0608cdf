package retention

import (
	"context"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
)

// PurgeExpiredSessions deletes sessions whose expiry is at or before now.
// Lookups already ignore such rows; this only reclaims space. Run it from the
// scheduler or the admin endpoint.
func PurgeExpiredSessions(ctx context.Context, sessions ports.SessionStore, now time.Time) (purged int64, err error) {
	return sessions.DeleteExpired(ctx, now.UTC())
}
