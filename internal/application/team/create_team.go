package team

import (
	"context"
	"strings"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/google/uuid"
)

type CreateTeamInput struct {
	Name        string
	Description *string
	MemberIDs   []string
}

// CreateTeam inserts a team together with its initial roster.
type CreateTeam struct {
	teams ports.TeamRepository
}

func NewCreateTeam(teams ports.TeamRepository) *CreateTeam {
	return &CreateTeam{teams: teams}
}

func (uc *CreateTeam) Execute(ctx context.Context, input CreateTeamInput) (*domain.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domerrors.Validation("name is required")
	}
	t := &domain.Team{ID: uuid.NewString(), Name: name, Description: input.Description}
	if err := uc.teams.Create(ctx, t, dedupe(input.MemberIDs)); err != nil {
		return nil, err
	}
	return t, nil
}

// dedupe drops blanks and repeats, keeping first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
