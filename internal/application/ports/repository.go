package ports

import (
	"context"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/domain"
)

// UserRepository defines persistence for users. Users are read-only from the API.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// SessionStore persists login sessions keyed by token hash.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	// FindValid returns the identity owning tokenHash when the session exists and
	// now is before its expiry, or (nil, nil) otherwise.
	FindValid(ctx context.Context, tokenHash string, now time.Time) (*domain.Identity, error)
	// Delete removes the session regardless of expiry. Returns ErrNotFound when no row matched.
	Delete(ctx context.Context, tokenHash string) error
	// DeleteExpired removes sessions with expires_at <= now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ClientRepository defines persistence for clients.
type ClientRepository interface {
	List(ctx context.Context) ([]*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, clientID string) error
	CountProjects(ctx context.Context, clientID string) (int64, error)
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]*domain.Project, error)
	GetByID(ctx context.Context, projectID string) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, projectID string) error
}

// TeamRepository defines persistence for teams and their rosters.
type TeamRepository interface {
	List(ctx context.Context) ([]*domain.Team, error)
	// Create inserts the team and its initial members in one transaction.
	Create(ctx context.Context, team *domain.Team, memberIDs []string) error
	Update(ctx context.Context, team *domain.Team) error
	// Delete removes the team and its memberships in one transaction.
	Delete(ctx context.Context, teamID string) error
	AddMember(ctx context.Context, m domain.TeamMembership) error
	RemoveMember(ctx context.Context, m domain.TeamMembership) error
	// ReplaceMembers swaps the whole roster in one transaction.
	ReplaceMembers(ctx context.Context, teamID string, memberIDs []string) error
}

// TaskRepository defines persistence for tasks.
type TaskRepository interface {
	List(ctx context.Context) ([]*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, taskID string) error
}

// TimeLogRepository defines persistence for time logs.
type TimeLogRepository interface {
	List(ctx context.Context) ([]*domain.TimeLog, error)
	Create(ctx context.Context, log *domain.TimeLog) error
	Update(ctx context.Context, log *domain.TimeLog) error
	Delete(ctx context.Context, timeLogID string) error
}
