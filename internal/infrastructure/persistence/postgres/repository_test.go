package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/db"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func strPtr(s string) *string { return &s }

func TestSessionStore_FindValid(t *testing.T) {
	mock := newMock(t)
	store := NewSessionStore(db.New(mock))
	now := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	exp := now.Add(30 * time.Minute)

	mock.ExpectQuery(`FROM sessions s\s+JOIN users u`).
		WithArgs("hash-1", now).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "full_name", "expires_at"}).AddRow("u-1", "Ada", exp))

	id, err := store.FindValid(context.Background(), "hash-1", now)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, domain.Identity{UserID: "u-1", DisplayName: "Ada", ExpiresAt: exp}, *id)
}

func TestSessionStore_FindValid_NoRow(t *testing.T) {
	mock := newMock(t)
	store := NewSessionStore(db.New(mock))
	now := time.Now()

	mock.ExpectQuery(`FROM sessions s`).
		WithArgs("missing", now).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "full_name", "expires_at"}))

	id, err := store.FindValid(context.Background(), "missing", now)
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestSessionStore_FindValid_StorageError(t *testing.T) {
	mock := newMock(t)
	store := NewSessionStore(db.New(mock))

	mock.ExpectQuery(`FROM sessions s`).WillReturnError(errors.New("connection reset"))

	_, err := store.FindValid(context.Background(), "h", time.Now())
	assert.ErrorIs(t, err, domerrors.ErrStorageUnavailable)
}

func TestSessionStore_Delete(t *testing.T) {
	mock := newMock(t)
	store := NewSessionStore(db.New(mock))

	mock.ExpectExec(`DELETE FROM sessions WHERE token_hash`).WithArgs("h").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM sessions WHERE token_hash`).WithArgs("h").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, store.Delete(context.Background(), "h"))
	assert.ErrorIs(t, store.Delete(context.Background(), "h"), domerrors.ErrNotFound)
}

func TestSessionStore_DeleteExpired(t *testing.T) {
	mock := newMock(t)
	store := NewSessionStore(db.New(mock))
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(`DELETE FROM sessions WHERE expires_at <=`).WithArgs(now).WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := store.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestSessionStore_Create_UnknownUser(t *testing.T) {
	mock := newMock(t)
	store := NewSessionStore(db.New(mock))
	now := time.Now()

	mock.ExpectExec(`INSERT INTO sessions`).
		WithArgs("h", "ghost", now, now.Add(time.Hour)).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := store.Create(context.Background(), &domain.Session{TokenHash: "h", UserID: "ghost", CreatedAt: now, ExpiresAt: now.Add(time.Hour)})
	assert.ErrorIs(t, err, domerrors.ErrValidation)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(db.New(mock))
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "email", "password_hash", "full_name", "created_at"}

	mock.ExpectQuery(`FROM users WHERE email`).WithArgs("ada@example.com").
		WillReturnRows(pgxmock.NewRows(cols).AddRow("u-1", "ada@example.com", "$argon2id$...", "Ada", created))
	mock.ExpectQuery(`FROM users WHERE email`).WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows(cols))

	u, err := repo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.FullName)

	u, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(db.New(mock))

	mock.ExpectExec(`INSERT INTO users`).WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &domain.User{ID: "u-1", Email: "ada@example.com"})
	assert.ErrorIs(t, err, domerrors.ErrConflict)
	assert.Equal(t, "email already registered", domerrors.Reason(err))
}

func TestUserRepository_List(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(db.New(mock))

	mock.ExpectQuery(`SELECT id, full_name FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name"}).AddRow("u-2", "Amy").AddRow("u-1", "Zed"))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Amy", users[0].FullName)
	assert.Empty(t, users[0].PasswordHash)
}

func TestClientRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepository(db.New(mock))

	mock.ExpectExec(`DELETE FROM clients`).WithArgs("c-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM clients`).WithArgs("c-2").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`DELETE FROM clients`).WithArgs("c-3").WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	require.NoError(t, repo.Delete(context.Background(), "c-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "c-2"), domerrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), "c-3"), domerrors.ErrConflict)
}

func TestClientRepository_CountProjects(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepository(db.New(mock))

	mock.ExpectQuery(`SELECT count\(\*\) FROM projects WHERE client_id`).WithArgs("c-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	n, err := repo.CountProjects(context.Background(), "c-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestClientRepository_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepository(db.New(mock))

	mock.ExpectExec(`UPDATE clients SET name`).WithArgs("c-1", "Acme").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE clients SET name`).WithArgs("c-9", "Acme").WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.Update(context.Background(), &domain.Client{ID: "c-1", Name: "Acme"}))
	assert.ErrorIs(t, repo.Update(context.Background(), &domain.Client{ID: "c-9", Name: "Acme"}), domerrors.ErrNotFound)
}

func TestProjectRepository_ListWithNulls(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(db.New(mock))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "client_id", "client_name", "name", "description", "start_date", "deadline"}

	mock.ExpectQuery(`LEFT JOIN clients c`).WillReturnRows(pgxmock.NewRows(cols).
		AddRow("p-1", strPtr("c-1"), strPtr("Acme"), "Apollo", strPtr("moon"), &start, (*time.Time)(nil)).
		AddRow("p-2", (*string)(nil), (*string)(nil), "Solo", (*string)(nil), (*time.Time)(nil), (*time.Time)(nil)))

	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Acme", *projects[0].ClientName)
	assert.True(t, start.Equal(*projects[0].StartDate))
	assert.Nil(t, projects[0].Deadline)
	assert.Nil(t, projects[1].ClientID)
	assert.Nil(t, projects[1].Description)
}

func TestProjectRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(db.New(mock))

	mock.ExpectQuery(`WHERE p.id = \$1`).WithArgs("p-9").
		WillReturnRows(pgxmock.NewRows([]string{"id", "client_id", "client_name", "name", "description", "start_date", "deadline"}))

	_, err := repo.GetByID(context.Background(), "p-9")
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}

func TestProjectRepository_CreateUnknownClient(t *testing.T) {
	mock := newMock(t)
	repo := NewProjectRepository(db.New(mock))
	clientID := "ghost"

	mock.ExpectExec(`INSERT INTO projects`).
		WithArgs("p-1", &clientID, "Apollo", (*string)(nil), (*time.Time)(nil), (*time.Time)(nil)).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := repo.Create(context.Background(), &domain.Project{ID: "p-1", ClientID: &clientID, Name: "Apollo"})
	assert.ErrorIs(t, err, domerrors.ErrValidation)
}

func TestTeamRepository_List(t *testing.T) {
	mock := newMock(t)
	repo := NewTeamRepository(db.New(mock), mock)

	mock.ExpectQuery(`FROM teams t`).WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "members", "member_ids"}).
		AddRow("t-1", "Core", (*string)(nil), []string{"Amy", "Zed"}, []string{"u-2", "u-1"}).
		AddRow("t-2", "Empty", strPtr("nobody yet"), []string{}, []string{}))

	teams, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, []string{"Amy", "Zed"}, teams[0].Members)
	assert.Equal(t, []string{"u-2", "u-1"}, teams[0].MemberIDs)
	assert.NotNil(t, teams[1].Members)
	assert.Empty(t, teams[1].Members)
}

func TestTeamRepository_CreateWithMembers(t *testing.T) {
	mock := newMock(t)
	repo := NewTeamRepository(db.New(mock), mock)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO teams`).WithArgs("t-1", "Core", (*string)(nil)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO team_members`).WithArgs("t-1", "u-1").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO team_members`).WithArgs("t-1", "u-2").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), &domain.Team{ID: "t-1", Name: "Core"}, []string{"u-1", "u-2"})
	require.NoError(t, err)
}

func TestTeamRepository_CreateRollsBackOnUnknownMember(t *testing.T) {
	mock := newMock(t)
	repo := NewTeamRepository(db.New(mock), mock)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO teams`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO team_members`).WithArgs("t-1", "ghost").WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &domain.Team{ID: "t-1", Name: "Core"}, []string{"ghost"})
	assert.ErrorIs(t, err, domerrors.ErrValidation)
}

func TestTeamRepository_ReplaceMembers(t *testing.T) {
	mock := newMock(t)
	repo := NewTeamRepository(db.New(mock), mock)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM teams WHERE id = \$1 FOR UPDATE`).WithArgs("t-1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("t-1"))
	mock.ExpectExec(`DELETE FROM team_members WHERE team_id = \$1`).WithArgs("t-1").WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(`INSERT INTO team_members`).WithArgs("t-1", "u-3").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceMembers(context.Background(), "t-1", []string{"u-3"}))
}

func TestTeamRepository_ReplaceMembers_UnknownTeam(t *testing.T) {
	mock := newMock(t)
	repo := NewTeamRepository(db.New(mock), mock)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("t-9").WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.ReplaceMembers(context.Background(), "t-9", []string{"u-1"})
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}

func TestTeamRepository_BeginFails(t *testing.T) {
	mock := newMock(t)
	repo := NewTeamRepository(db.New(mock), mock)

	mock.ExpectBegin().WillReturnError(errors.New("pool closed"))

	err := repo.Delete(context.Background(), "t-1")
	assert.ErrorIs(t, err, domerrors.ErrStorageUnavailable)
}

func TestTeamRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewTeamRepository(db.New(mock), mock)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM team_members WHERE team_id`).WithArgs("t-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM teams WHERE id`).WithArgs("t-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "t-1"))
}

func TestTeamRepository_MemberOps(t *testing.T) {
	mock := newMock(t)
	repo := NewTeamRepository(db.New(mock), mock)
	m := domain.TeamMembership{TeamID: "t-1", UserID: "u-1"}

	mock.ExpectExec(`INSERT INTO team_members`).WithArgs("t-1", "u-1").WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectExec(`DELETE FROM team_members WHERE team_id = \$1 AND user_id`).WithArgs("t-1", "u-1").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.AddMember(context.Background(), m), domerrors.ErrConflict)
	assert.ErrorIs(t, repo.RemoveMember(context.Background(), m), domerrors.ErrNotFound)
}

func TestTaskRepository_DeleteReferenced(t *testing.T) {
	mock := newMock(t)
	repo := NewTaskRepository(db.New(mock))

	mock.ExpectExec(`DELETE FROM tasks`).WithArgs("t-1").WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := repo.Delete(context.Background(), "t-1")
	assert.ErrorIs(t, err, domerrors.ErrConflict)
	assert.Equal(t, "task is referenced by other records", domerrors.Reason(err))
}

func TestTimeLogRepository_List(t *testing.T) {
	mock := newMock(t)
	repo := NewTimeLogRepository(db.New(mock))
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM time_logs tl`).WillReturnRows(pgxmock.NewRows([]string{"id", "task_id", "task_name", "user_id", "full_name", "start_time", "end_time"}).
		AddRow("l-1", "t-1", "Design", "u-1", "Ada", start, start.Add(90*time.Minute)))

	logs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Design", logs[0].TaskName)
	assert.Equal(t, 1.5, logs[0].TotalHours())
}

func TestTimeLogRepository_UpdateMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewTimeLogRepository(db.New(mock))
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE time_logs`).WithArgs("l-9", "t-1", "u-1", start, start).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &domain.TimeLog{ID: "l-9", TaskID: "t-1", UserID: "u-1", StartTime: start, EndTime: start})
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}
