package domain

import "time"

// DefaultSessionTTL is the fixed lifetime of a session from its creation.
const DefaultSessionTTL = time.Hour

// Session is a server-side login session. Only the SHA-256 of the opaque token
// is persisted.
type Session struct {
	TokenHash string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ValidAt reports whether the session is still usable at now. Expiry is
// exclusive: a session is rejected at exactly ExpiresAt.
func (s Session) ValidAt(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

// Identity is the authenticated caller resolved from a valid session.
type Identity struct {
	UserID      string
	DisplayName string
	ExpiresAt   time.Time
}
