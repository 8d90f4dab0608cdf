package project

import (
	"context"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
)

// UpdateProject replaces every editable field of an existing project.
type UpdateProject struct {
	projects ports.ProjectRepository
}

func NewUpdateProject(projects ports.ProjectRepository) *UpdateProject {
	return &UpdateProject{projects: projects}
}

func (uc *UpdateProject) Execute(ctx context.Context, p domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return uc.projects.Update(ctx, &p)
}
