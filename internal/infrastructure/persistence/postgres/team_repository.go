package postgres

import (
	"context"
	"errors"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/db"
	"github.com/jackc/pgx/v5"
)

type TeamRepository struct {
	q    *db.Queries
	pool db.Beginner
}

func NewTeamRepository(q *db.Queries, pool db.Beginner) *TeamRepository {
	return &TeamRepository{q: q, pool: pool}
}

func (r *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	rows, err := r.q.ListTeams(ctx)
	if err != nil {
		return nil, domerrors.Storage(err)
	}
	teams := make([]*domain.Team, 0, len(rows))
	for _, t := range rows {
		members, ids := t.Members, t.MemberIds
		if members == nil {
			members = []string{}
		}
		if ids == nil {
			ids = []string{}
		}
		teams = append(teams, &domain.Team{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Members:     members,
			MemberIDs:   ids,
		})
	}
	return teams, nil
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team, memberIDs []string) error {
	return r.inTx(ctx, func(q *db.Queries) error {
		if err := q.CreateTeam(ctx, db.Team{ID: team.ID, Name: team.Name, Description: team.Description}); err != nil {
			return writeErr(err)
		}
		return addMembers(ctx, q, team.ID, memberIDs)
	})
}

func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) error {
	n, err := r.q.UpdateTeam(ctx, db.Team{ID: team.ID, Name: team.Name, Description: team.Description})
	return affected(n, writeErr(err), "team")
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	return r.inTx(ctx, func(q *db.Queries) error {
		if err := q.DeleteTeamMembers(ctx, teamID); err != nil {
			return domerrors.Storage(err)
		}
		n, err := q.DeleteTeam(ctx, teamID)
		return affected(n, deleteErr(err, "team"), "team")
	})
}

func (r *TeamRepository) AddMember(ctx context.Context, m domain.TeamMembership) error {
	return writeErr(r.q.AddTeamMember(ctx, db.TeamMember{TeamID: m.TeamID, UserID: m.UserID}))
}

func (r *TeamRepository) RemoveMember(ctx context.Context, m domain.TeamMembership) error {
	n, err := r.q.RemoveTeamMember(ctx, db.TeamMember{TeamID: m.TeamID, UserID: m.UserID})
	if err != nil {
		return domerrors.Storage(err)
	}
	return affected(n, nil, "team member")
}

func (r *TeamRepository) ReplaceMembers(ctx context.Context, teamID string, memberIDs []string) error {
	return r.inTx(ctx, func(q *db.Queries) error {
		if _, err := q.LockTeam(ctx, teamID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domerrors.NotFound("team")
			}
			return domerrors.Storage(err)
		}
		if err := q.DeleteTeamMembers(ctx, teamID); err != nil {
			return domerrors.Storage(err)
		}
		return addMembers(ctx, q, teamID, memberIDs)
	})
}

func (r *TeamRepository) inTx(ctx context.Context, fn func(q *db.Queries) error) error {
	err := db.WithTx(ctx, r.pool, fn)
	if err == nil || isDomainErr(err) {
		return err
	}
	return domerrors.Storage(err)
}

func addMembers(ctx context.Context, q *db.Queries, teamID string, memberIDs []string) error {
	for _, id := range memberIDs {
		if err := q.AddTeamMember(ctx, db.TeamMember{TeamID: teamID, UserID: id}); err != nil {
			return writeErr(err)
		}
	}
	return nil
}

func isDomainErr(err error) bool {
	for _, s := range []error{domerrors.ErrValidation, domerrors.ErrNotFound, domerrors.ErrConflict, domerrors.ErrStorageUnavailable} {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}

var _ ports.TeamRepository = (*TeamRepository)(nil)
