// Package portsfake provides in-memory implementations of the ports used by
// tests. The fakes share one Store so cross-entity rules (session joins,
// client/project dependencies, roster names) behave like the SQL schema.
package portsfake

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
)

// Store holds every table in memory.
type Store struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	sessions map[string]domain.Session
	clients  map[string]domain.Client
	projects map[string]domain.Project
	teams    map[string]domain.Team
	members  map[domain.TeamMembership]bool
	tasks    map[string]domain.Task
	timeLogs map[string]domain.TimeLog

	// Err, when set, is returned by every operation to simulate an outage.
	Err error
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:    make(map[string]domain.User),
		sessions: make(map[string]domain.Session),
		clients:  make(map[string]domain.Client),
		projects: make(map[string]domain.Project),
		teams:    make(map[string]domain.Team),
		members:  make(map[domain.TeamMembership]bool),
		tasks:    make(map[string]domain.Task),
		timeLogs: make(map[string]domain.TimeLog),
	}
}

func (s *Store) Users() *UserRepo        { return &UserRepo{s} }
func (s *Store) Sessions() *SessionStore { return &SessionStore{s} }
func (s *Store) Clients() *ClientRepo    { return &ClientRepo{s} }
func (s *Store) Projects() *ProjectRepo  { return &ProjectRepo{s} }
func (s *Store) Teams() *TeamRepo        { return &TeamRepo{s} }
func (s *Store) Tasks() *TaskRepo        { return &TaskRepo{s} }
func (s *Store) TimeLogs() *TimeLogRepo  { return &TimeLogRepo{s} }

// SessionCount reports how many session rows exist, expired ones included.
func (s *Store) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) fail() error { return s.Err }

func storageErr(err error) error { return domerrors.Storage(err) }

func strPtrCopy(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// UserRepo implements ports.UserRepository.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domerrors.Conflict("email already registered")
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.s.fail() != nil {
		return nil, storageErr(r.s.fail())
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*domain.User, error) {
	if r.s.fail() != nil {
		return nil, storageErr(r.s.fail())
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u := u
		list = append(list, &u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FullName < list[j].FullName })
	return list, nil
}

// SessionStore implements ports.SessionStore.
type SessionStore struct{ s *Store }

func (r *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[session.UserID]; !ok {
		return domerrors.Validation("user does not exist")
	}
	r.s.sessions[session.TokenHash] = *session
	return nil
}

func (r *SessionStore) FindValid(ctx context.Context, tokenHash string, now time.Time) (*domain.Identity, error) {
	if r.s.fail() != nil {
		return nil, storageErr(r.s.fail())
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sess, ok := r.s.sessions[tokenHash]
	if !ok || !sess.ValidAt(now) {
		return nil, nil
	}
	u, ok := r.s.users[sess.UserID]
	if !ok {
		return nil, nil
	}
	return &domain.Identity{UserID: u.ID, DisplayName: u.FullName, ExpiresAt: sess.ExpiresAt}, nil
}

func (r *SessionStore) Delete(ctx context.Context, tokenHash string) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sessions[tokenHash]; !ok {
		return domerrors.NotFound("session")
	}
	delete(r.s.sessions, tokenHash)
	return nil
}

func (r *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if r.s.fail() != nil {
		return 0, storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for k, sess := range r.s.sessions {
		if !sess.ValidAt(now) {
			delete(r.s.sessions, k)
			n++
		}
	}
	return n, nil
}

// ClientRepo implements ports.ClientRepository.
type ClientRepo struct{ s *Store }

func (r *ClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	if r.s.fail() != nil {
		return nil, storageErr(r.s.fail())
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*domain.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *ClientRepo) Create(ctx context.Context, client *domain.Client) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[client.ID] = *client
	return nil
}

func (r *ClientRepo) Update(ctx context.Context, client *domain.Client) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[client.ID]; !ok {
		return domerrors.NotFound("client")
	}
	r.s.clients[client.ID] = *client
	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, clientID string) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[clientID]; !ok {
		return domerrors.NotFound("client")
	}
	for _, p := range r.s.projects {
		if p.ClientID != nil && *p.ClientID == clientID {
			return domerrors.Conflict("client is referenced by other records")
		}
	}
	delete(r.s.clients, clientID)
	return nil
}

func (r *ClientRepo) CountProjects(ctx context.Context, clientID string) (int64, error) {
	if r.s.fail() != nil {
		return 0, storageErr(r.s.fail())
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, p := range r.s.projects {
		if p.ClientID != nil && *p.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

// ProjectRepo implements ports.ProjectRepository.
type ProjectRepo struct{ s *Store }

func (r *ProjectRepo) withClientName(p domain.Project) *domain.Project {
	p.ClientID = strPtrCopy(p.ClientID)
	p.ClientName = nil
	if p.ClientID != nil {
		if c, ok := r.s.clients[*p.ClientID]; ok {
			name := c.Name
			p.ClientName = &name
		}
	}
	return &p
}

func (r *ProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	if r.s.fail() != nil {
		return nil, storageErr(r.s.fail())
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*domain.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		list = append(list, r.withClientName(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	if r.s.fail() != nil {
		return nil, storageErr(r.s.fail())
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.projects[projectID]
	if !ok {
		return nil, domerrors.NotFound("project")
	}
	return r.withClientName(p), nil
}

func (r *ProjectRepo) checkClient(p *domain.Project) error {
	if p.ClientID == nil {
		return nil
	}
	if _, ok := r.s.clients[*p.ClientID]; !ok {
		return domerrors.Validation("referenced record does not exist")
	}
	return nil
}

func (r *ProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkClient(project); err != nil {
		return err
	}
	r.s.projects[project.ID] = *project
	return nil
}

func (r *ProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[project.ID]; !ok {
		return domerrors.NotFound("project")
	}
	if err := r.checkClient(project); err != nil {
		return err
	}
	r.s.projects[project.ID] = *project
	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, projectID string) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[projectID]; !ok {
		return domerrors.NotFound("project")
	}
	for _, t := range r.s.tasks {
		if t.ProjectID == projectID {
			return domerrors.Conflict("project is referenced by other records")
		}
	}
	delete(r.s.projects, projectID)
	return nil
}

// TeamRepo implements ports.TeamRepository.
type TeamRepo struct{ s *Store }

func (r *TeamRepo) List(ctx context.Context) ([]*domain.Team, error) {
	if r.s.fail() != nil {
		return nil, storageErr(r.s.fail())
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*domain.Team, 0, len(r.s.teams))
	for _, t := range r.s.teams {
		t := t
		var users []domain.User
		for m := range r.s.members {
			if m.TeamID == t.ID {
				users = append(users, r.s.users[m.UserID])
			}
		}
		sort.Slice(users, func(i, j int) bool { return users[i].FullName < users[j].FullName })
		t.Members = []string{}
		t.MemberIDs = []string{}
		for _, u := range users {
			t.Members = append(t.Members, u.FullName)
			t.MemberIDs = append(t.MemberIDs, u.ID)
		}
		list = append(list, &t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *TeamRepo) checkUsers(ids []string) error {
	for _, id := range ids {
		if _, ok := r.s.users[id]; !ok {
			return domerrors.Validation("referenced record does not exist")
		}
	}
	return nil
}

func (r *TeamRepo) Create(ctx context.Context, team *domain.Team, memberIDs []string) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkUsers(memberIDs); err != nil {
		return err
	}
	r.s.teams[team.ID] = *team
	for _, id := range memberIDs {
		r.s.members[domain.TeamMembership{TeamID: team.ID, UserID: id}] = true
	}
	return nil
}

func (r *TeamRepo) Update(ctx context.Context, team *domain.Team) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teams[team.ID]; !ok {
		return domerrors.NotFound("team")
	}
	r.s.teams[team.ID] = *team
	return nil
}

func (r *TeamRepo) Delete(ctx context.Context, teamID string) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teams[teamID]; !ok {
		return domerrors.NotFound("team")
	}
	for m := range r.s.members {
		if m.TeamID == teamID {
			delete(r.s.members, m)
		}
	}
	delete(r.s.teams, teamID)
	return nil
}

func (r *TeamRepo) AddMember(ctx context.Context, m domain.TeamMembership) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teams[m.TeamID]; !ok {
		return domerrors.Validation("referenced record does not exist")
	}
	if err := r.checkUsers([]string{m.UserID}); err != nil {
		return err
	}
	if r.s.members[m] {
		return domerrors.Conflict("record already exists")
	}
	r.s.members[m] = true
	return nil
}

func (r *TeamRepo) RemoveMember(ctx context.Context, m domain.TeamMembership) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.members[m] {
		return domerrors.NotFound("team member")
	}
	delete(r.s.members, m)
	return nil
}

func (r *TeamRepo) ReplaceMembers(ctx context.Context, teamID string, memberIDs []string) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teams[teamID]; !ok {
		return domerrors.NotFound("team")
	}
	if err := r.checkUsers(memberIDs); err != nil {
		return err
	}
	for m := range r.s.members {
		if m.TeamID == teamID {
			delete(r.s.members, m)
		}
	}
	for _, id := range memberIDs {
		r.s.members[domain.TeamMembership{TeamID: teamID, UserID: id}] = true
	}
	return nil
}

// TaskRepo implements ports.TaskRepository.
type TaskRepo struct{ s *Store }

func (r *TaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	if r.s.fail() != nil {
		return nil, storageErr(r.s.fail())
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*domain.Task, 0, len(r.s.tasks))
	for _, t := range r.s.tasks {
		t := t
		t.ProjectName = r.s.projects[t.ProjectID].Name
		list = append(list, &t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *TaskRepo) checkProject(t *domain.Task) error {
	if _, ok := r.s.projects[t.ProjectID]; !ok {
		return domerrors.Validation("referenced record does not exist")
	}
	return nil
}

func (r *TaskRepo) Create(ctx context.Context, task *domain.Task) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkProject(task); err != nil {
		return err
	}
	r.s.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepo) Update(ctx context.Context, task *domain.Task) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[task.ID]; !ok {
		return domerrors.NotFound("task")
	}
	if err := r.checkProject(task); err != nil {
		return err
	}
	r.s.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, taskID string) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[taskID]; !ok {
		return domerrors.NotFound("task")
	}
	for _, tl := range r.s.timeLogs {
		if tl.TaskID == taskID {
			return domerrors.Conflict("task is referenced by other records")
		}
	}
	delete(r.s.tasks, taskID)
	return nil
}

// TimeLogRepo implements ports.TimeLogRepository.
type TimeLogRepo struct{ s *Store }

func (r *TimeLogRepo) List(ctx context.Context) ([]*domain.TimeLog, error) {
	if r.s.fail() != nil {
		return nil, storageErr(r.s.fail())
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*domain.TimeLog, 0, len(r.s.timeLogs))
	for _, tl := range r.s.timeLogs {
		tl := tl
		tl.TaskName = r.s.tasks[tl.TaskID].Name
		tl.FullName = r.s.users[tl.UserID].FullName
		list = append(list, &tl)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].StartTime.After(list[j].StartTime) })
	return list, nil
}

func (r *TimeLogRepo) checkRefs(tl *domain.TimeLog) error {
	if _, ok := r.s.tasks[tl.TaskID]; !ok {
		return domerrors.Validation("referenced record does not exist")
	}
	if _, ok := r.s.users[tl.UserID]; !ok {
		return domerrors.Validation("referenced record does not exist")
	}
	return nil
}

func (r *TimeLogRepo) Create(ctx context.Context, tl *domain.TimeLog) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkRefs(tl); err != nil {
		return err
	}
	r.s.timeLogs[tl.ID] = *tl
	return nil
}

func (r *TimeLogRepo) Update(ctx context.Context, tl *domain.TimeLog) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.timeLogs[tl.ID]; !ok {
		return domerrors.NotFound("time log")
	}
	if err := r.checkRefs(tl); err != nil {
		return err
	}
	r.s.timeLogs[tl.ID] = *tl
	return nil
}

func (r *TimeLogRepo) Delete(ctx context.Context, timeLogID string) error {
	if r.s.fail() != nil {
		return storageErr(r.s.fail())
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.timeLogs[timeLogID]; !ok {
		return domerrors.NotFound("time log")
	}
	delete(r.s.timeLogs, timeLogID)
	return nil
}

var (
	_ ports.UserRepository    = (*UserRepo)(nil)
	_ ports.SessionStore      = (*SessionStore)(nil)
	_ ports.ClientRepository  = (*ClientRepo)(nil)
	_ ports.ProjectRepository = (*ProjectRepo)(nil)
	_ ports.TeamRepository    = (*TeamRepo)(nil)
	_ ports.TaskRepository    = (*TaskRepo)(nil)
	_ ports.TimeLogRepository = (*TimeLogRepo)(nil)
)
