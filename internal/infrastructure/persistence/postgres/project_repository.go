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

type ProjectRepository struct {
	q *db.Queries
}

func NewProjectRepository(q *db.Queries) *ProjectRepository {
	return &ProjectRepository{q: q}
}

func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := r.q.ListProjects(ctx)
	if err != nil {
		return nil, domerrors.Storage(err)
	}
	projects := make([]*domain.Project, 0, len(rows))
	for _, p := range rows {
		projects = append(projects, dbProjectToDomain(p))
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	p, err := r.q.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domerrors.NotFound("project")
		}
		return nil, domerrors.Storage(err)
	}
	return dbProjectToDomain(p), nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return writeErr(r.q.CreateProject(ctx, domainProjectToDB(project)))
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	n, err := r.q.UpdateProject(ctx, domainProjectToDB(project))
	return affected(n, writeErr(err), "project")
}

func (r *ProjectRepository) Delete(ctx context.Context, projectID string) error {
	n, err := r.q.DeleteProject(ctx, projectID)
	return affected(n, deleteErr(err, "project"), "project")
}

func dbProjectToDomain(p db.ProjectRow) *domain.Project {
	return &domain.Project{
		ID:          p.ID,
		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		Deadline:    p.Deadline,
	}
}

func domainProjectToDB(p *domain.Project) db.Project {
	return db.Project{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		Deadline:    p.Deadline,
	}
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)
