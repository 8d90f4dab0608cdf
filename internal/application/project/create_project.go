package project

import (
	"context"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	"github.com/google/uuid"
)

// CreateProject validates and stores a new project. Optional fields left nil
// are stored as NULL.
type CreateProject struct {
	projects ports.ProjectRepository
}

func NewCreateProject(projects ports.ProjectRepository) *CreateProject {
	return &CreateProject{projects: projects}
}

// Execute assigns a fresh id to p and persists it.
func (uc *CreateProject) Execute(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()
	p.ClientName = nil
	if err := uc.projects.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
